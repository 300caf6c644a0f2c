package service_test

import (
	"context"
	"time"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/service"
)

// memoryRepo is an in-memory persistence collaborator recording every
// snapshot it is handed.
type memoryRepo struct {
	ws      *models.Workspace
	loadErr error
	saves   int
}

func (r *memoryRepo) Load(_ context.Context) (*models.Workspace, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.ws, nil
}

func (r *memoryRepo) Save(_ context.Context, ws *models.Workspace) error {
	r.ws = ws
	r.saves++
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// newSeededState loads a fresh state from an empty repo, so it starts from
// the seed workspace.
func newSeededState(clock service.Clock) (*service.State, *memoryRepo) {
	repo := &memoryRepo{}
	return service.LoadState(context.Background(), repo, clock), repo
}
