package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/draftdeck/draftdeck/internal/models"
)

type fileWorkspaceRepository struct {
	path string
}

// NewFileWorkspaceRepository stores the workspace as a JSON blob at path,
// the single-user equivalent of the browser storage the workspace
// originally lived in.
func NewFileWorkspaceRepository(path string) WorkspaceRepository {
	return &fileWorkspaceRepository{path: path}
}

func (r *fileWorkspaceRepository) Load(_ context.Context) (*models.Workspace, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var ws models.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("corrupted workspace snapshot at %s: %w", r.path, err)
	}
	return &ws, nil
}

func (r *fileWorkspaceRepository) Save(_ context.Context, ws *models.Workspace) error {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	// Write to a sibling temp file and rename so a crash mid-write never
	// leaves a half-written snapshot behind.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".workspace-*.json")
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		slog.Info(err.Error())
		return err
	}
	return nil
}
