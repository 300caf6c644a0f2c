package service

import (
	"context"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/transfer"
)

type WorkspaceService interface {
	Snapshot(ctx context.Context) (*models.Workspace, error)
	Activity(ctx context.Context) ([]models.ActivityEntry, error)
	Stats(ctx context.Context) (*transfer.WorkspaceStats, error)
}

type workspaceService struct {
	st *State
}

func NewWorkspaceService(st *State) WorkspaceService {
	return &workspaceService{st: st}
}

func (s *workspaceService) Snapshot(_ context.Context) (*models.Workspace, error) {
	return s.st.Snapshot(), nil
}

func (s *workspaceService) Activity(_ context.Context) ([]models.ActivityEntry, error) {
	return s.st.Snapshot().Activity, nil
}

// Stats derives the dashboard counters from the current state; nothing here
// is stored.
func (s *workspaceService) Stats(_ context.Context) (*transfer.WorkspaceStats, error) {
	ws := s.st.Snapshot()

	stats := &transfer.WorkspaceStats{
		Templates:     len(ws.Templates),
		Posts:         len(ws.Posts),
		PostsByStatus: make(map[string]int),
	}
	for _, post := range ws.Posts {
		stats.PostsByStatus[string(post.Status)]++
	}

	for _, template := range ws.Templates {
		if template.UsageCount == 0 {
			continue
		}
		if stats.MostUsed == nil || template.UsageCount > stats.MostUsed.UsageCount {
			stats.MostUsed = &transfer.TemplateUsage{
				ID:         template.ID,
				Name:       template.Name,
				UsageCount: template.UsageCount,
			}
		}
	}

	return stats, nil
}
