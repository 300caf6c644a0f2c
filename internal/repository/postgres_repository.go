package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/models"
)

type postgresWorkspaceRepository struct {
	db *sql.DB
}

// NewPostgresWorkspaceRepository keeps the workspace snapshot in a
// single-row jsonb table, upserted on every save.
func NewPostgresWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &postgresWorkspaceRepository{db: db}
}

// EnsureSnapshotTable creates the snapshot table if it does not exist yet.
func EnsureSnapshotTable(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS workspace_snapshots (
			id INT PRIMARY KEY CHECK (id = 1),
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := db.ExecContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postgresWorkspaceRepository) Load(ctx context.Context) (*models.Workspace, error) {
	query := `SELECT data FROM workspace_snapshots WHERE id = 1`

	var data []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	var ws models.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("corrupted workspace snapshot row: %w", err)
	}
	return &ws, nil
}

func (r *postgresWorkspaceRepository) Save(ctx context.Context, ws *models.Workspace) error {
	data, err := json.Marshal(ws)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	query := `
		INSERT INTO workspace_snapshots (id, data, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	_, err = r.db.ExecContext(ctx, query, data)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
