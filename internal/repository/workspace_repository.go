package repository

import (
	"context"

	"github.com/draftdeck/draftdeck/internal/models"
)

// WorkspaceRepository stores the whole workspace as one serialized snapshot.
// Load returns (nil, nil) when nothing has been persisted yet; a decoding
// failure is an error so the caller can fall back to the seed state.
type WorkspaceRepository interface {
	Load(ctx context.Context) (*models.Workspace, error)
	Save(ctx context.Context, ws *models.Workspace) error
}
