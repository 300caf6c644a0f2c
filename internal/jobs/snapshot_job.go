package job

import (
	"context"
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/repository"
	"github.com/draftdeck/draftdeck/internal/service"
)

// SnapshotJob periodically re-persists the current workspace. Saves after
// each mutation are fire-and-forget, so a failed write would otherwise go
// unnoticed until the next change; the cron pass closes that gap.
type SnapshotJob struct {
	st   *service.State
	repo repository.WorkspaceRepository
}

func NewSnapshotJob(st *service.State, repo repository.WorkspaceRepository) *SnapshotJob {
	return &SnapshotJob{st: st, repo: repo}
}

func (j *SnapshotJob) PersistSnapshot() {
	ctx := context.Background()

	ws := j.st.Snapshot()
	if err := j.repo.Save(ctx, ws); err != nil {
		slog.Info("Unable to persist workspace snapshot", "error", err)
	}
}
