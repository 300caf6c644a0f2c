package models

// SchemaVersion is stamped into every persisted snapshot so future layout
// changes can be detected on load.
const SchemaVersion = 1

// Workspace is the whole persisted application state: the unit of
// persistence and the unit of atomic mutation per operation.
type Workspace struct {
	Version   int             `json:"version"`
	Templates []Template      `json:"templates"`
	Posts     []Post          `json:"posts"`
	Activity  []ActivityEntry `json:"activity"`
}

// RecordActivity prepends an entry and truncates the journal to
// ActivityLimit, so the newest entry is always first.
func (w *Workspace) RecordActivity(entry ActivityEntry) {
	w.Activity = append([]ActivityEntry{entry}, w.Activity...)
	if len(w.Activity) > ActivityLimit {
		w.Activity = w.Activity[:ActivityLimit]
	}
}

// FindTemplate returns a pointer into the workspace's template slice.
func (w *Workspace) FindTemplate(id string) *Template {
	for i := range w.Templates {
		if w.Templates[i].ID == id {
			return &w.Templates[i]
		}
	}
	return nil
}

// FindPost returns a pointer into the workspace's post slice.
func (w *Workspace) FindPost(id string) *Post {
	for i := range w.Posts {
		if w.Posts[i].ID == id {
			return &w.Posts[i]
		}
	}
	return nil
}

// Clone deep-copies the workspace so mutations on the copy never leak into
// a snapshot handed to another observer.
func (w *Workspace) Clone() *Workspace {
	clone := &Workspace{
		Version:   w.Version,
		Templates: make([]Template, len(w.Templates)),
		Posts:     make([]Post, len(w.Posts)),
		Activity:  make([]ActivityEntry, len(w.Activity)),
	}
	copy(clone.Activity, w.Activity)
	for i, t := range w.Templates {
		t.Platforms = append([]Platform(nil), t.Platforms...)
		t.Tags = append([]string(nil), t.Tags...)
		clone.Templates[i] = t
	}
	for i, p := range w.Posts {
		p.Platforms = append([]Platform(nil), p.Platforms...)
		p.Reviewers = append([]string(nil), p.Reviewers...)
		values := make(map[string]string, len(p.Values))
		for k, v := range p.Values {
			values[k] = v
		}
		p.Values = values
		if p.ScheduledAt != nil {
			scheduledAt := *p.ScheduledAt
			p.ScheduledAt = &scheduledAt
		}
		if p.ApprovedAt != nil {
			approvedAt := *p.ApprovedAt
			p.ApprovedAt = &approvedAt
		}
		if p.PublishedAt != nil {
			publishedAt := *p.PublishedAt
			p.PublishedAt = &publishedAt
		}
		clone.Posts[i] = p
	}
	return clone
}
