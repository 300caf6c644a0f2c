package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/repository"
)

// State owns the single workspace aggregate. Every mutation runs as one
// clone-mutate-replace transformation under the lock, so any observer sees
// either the state before or after an operation, never a partial one.
type State struct {
	mu   sync.Mutex
	ws   *models.Workspace
	repo repository.WorkspaceRepository
}

// LoadState restores the workspace from the repository. A missing snapshot
// starts from the seed; a corrupted one is reported to the log and also
// falls back to the seed rather than blocking startup.
func LoadState(ctx context.Context, repo repository.WorkspaceRepository, clock Clock) *State {
	ws, err := repo.Load(ctx)
	if err != nil {
		slog.Error("discarding unreadable workspace snapshot", "error", err)
		ws = nil
	}
	if ws == nil {
		ws = models.SeedWorkspace(clock.Now())
	}
	ws.Version = models.SchemaVersion
	return &State{ws: ws, repo: repo}
}

// Snapshot returns a deep copy of the current workspace.
func (s *State) Snapshot() *models.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Clone()
}

// Mutate applies fn to a clone of the workspace. If fn succeeds the clone
// replaces the current state and the new snapshot is handed to the
// repository; persistence failures are logged, not surfaced, since the
// in-memory aggregate stays authoritative for the session.
func (s *State) Mutate(ctx context.Context, fn func(ws *models.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.ws.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.ws = next

	if err := s.repo.Save(ctx, next.Clone()); err != nil {
		slog.Error("failed to persist workspace snapshot", "error", err)
	}
	return nil
}
