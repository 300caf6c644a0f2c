package transfer

type TemplateUsage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
}

type WorkspaceStats struct {
	Templates     int            `json:"templates"`
	Posts         int            `json:"posts"`
	PostsByStatus map[string]int `json:"posts_by_status"`
	MostUsed      *TemplateUsage `json:"most_used_template,omitempty"`
}
