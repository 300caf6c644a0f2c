package models

import "time"

const (
	ActivityCategoryTemplate = "template"
	ActivityCategoryPost     = "post"
)

// ActivityLimit bounds the journal; the oldest entries are dropped once it
// is exceeded.
const ActivityLimit = 40

type ActivityEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Summary   string    `json:"summary"`
	Detail    string    `json:"detail,omitempty"`
	Category  string    `json:"category"`
}
