package transfer

type TemplateSaveRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}
