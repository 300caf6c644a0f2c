package transfer

type PostComposition struct {
	TemplateID string            `json:"template_id"`
	Values     map[string]string `json:"values"`
	Platforms  []string          `json:"platforms"`
	// ScheduledAt uses the datetime-local layout "2006-01-02T15:04".
	ScheduledAt string   `json:"scheduled_at"`
	Notes       string   `json:"notes"`
	MediaURL    string   `json:"media_url"`
	Reviewers   []string `json:"reviewers"`
}
