package models

import "time"

type PostStatus string

const (
	PostStatusPending   PostStatus = "pending"
	PostStatusApproved  PostStatus = "approved"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

var statusRank = map[PostStatus]int{
	PostStatusPending:   0,
	PostStatusApproved:  1,
	PostStatusScheduled: 2,
	PostStatusPublished: 3,
}

// Rank orders statuses along the workflow. Unknown statuses rank below
// pending so they can never satisfy a forward transition.
func (s PostStatus) Rank() int {
	rank, ok := statusRank[s]
	if !ok {
		return -1
	}
	return rank
}

// CanAdvanceTo reports whether the workflow permits moving from s to next.
// Transitions only move forward: pending -> approved -> scheduled -> published,
// where scheduled is optional and published is reachable from approved or
// scheduled directly.
func (s PostStatus) CanAdvanceTo(next PostStatus) bool {
	switch next {
	case PostStatusApproved:
		return s == PostStatusPending
	case PostStatusScheduled:
		return s == PostStatusApproved
	case PostStatusPublished:
		return s == PostStatusApproved || s == PostStatusScheduled
	default:
		return false
	}
}

type Post struct {
	ID           string            `json:"id"`
	TemplateID   string            `json:"template_id"`
	TemplateName string            `json:"template_name"`
	Values       map[string]string `json:"values"`
	FinalMessage string            `json:"final_message"`
	Platforms    []Platform        `json:"platforms"`
	ScheduledAt  *time.Time        `json:"scheduled_at,omitempty"`
	Status       PostStatus        `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	ApprovedAt   *time.Time        `json:"approved_at,omitempty"`
	PublishedAt  *time.Time        `json:"published_at,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	MediaURL     string            `json:"media_url,omitempty"`
	Reviewers    []string          `json:"reviewers,omitempty"`
}
