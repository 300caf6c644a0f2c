package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type TemplateService interface {
	Save(ctx context.Context, in *transfer.TemplateSaveRequest) (*models.Template, error)
	List(ctx context.Context) ([]models.Template, error)
	Remove(ctx context.Context, id string) error
}

type templateService struct {
	st    *State
	clock Clock
}

func NewTemplateService(st *State, clock Clock) TemplateService {
	return &templateService{st: st, clock: clock}
}

// Save updates the template matching in.ID in place, or inserts a new one
// at the front of the collection when no id matches. Updates preserve
// created_at and usage_count; both paths refresh updated_at and record one
// journal entry.
func (s *templateService) Save(ctx context.Context, in *transfer.TemplateSaveRequest) (*models.Template, error) {
	if in == nil {
		err := fmt.Errorf("%w: template input is nil", ErrValidationFailed)
		slog.Info(err.Error())
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	content := strings.TrimSpace(in.Content)
	if name == "" {
		err := fmt.Errorf("%w: template name is required", ErrValidationFailed)
		slog.Info(err.Error())
		return nil, err
	}
	if content == "" {
		err := fmt.Errorf("%w: template content is required", ErrValidationFailed)
		slog.Info(err.Error())
		return nil, err
	}

	platforms := models.NormalizePlatforms(in.Platforms)
	now := s.clock.Now()

	var saved models.Template
	err := s.st.Mutate(ctx, func(ws *models.Workspace) error {
		if existing := ws.FindTemplate(in.ID); existing != nil {
			existing.Name = name
			existing.Description = in.Description
			existing.Platforms = platforms
			existing.Content = in.Content
			existing.Tags = append([]string(nil), in.Tags...)
			existing.UpdatedAt = now
			saved = *existing

			entryID, err := gonanoid.New()
			if err != nil {
				return err
			}
			ws.RecordActivity(models.ActivityEntry{
				ID:        entryID,
				Timestamp: now,
				Summary:   fmt.Sprintf("Updated template %q", name),
				Detail:    strings.Join(models.PlatformNames(platforms), ", "),
				Category:  models.ActivityCategoryTemplate,
			})
			return nil
		}

		templateID, err := gonanoid.New()
		if err != nil {
			return err
		}
		template := models.Template{
			ID:          templateID,
			Name:        name,
			Description: in.Description,
			Platforms:   platforms,
			Content:     in.Content,
			Tags:        append([]string(nil), in.Tags...),
			CreatedAt:   now,
			UpdatedAt:   now,
			UsageCount:  0,
		}
		ws.Templates = append([]models.Template{template}, ws.Templates...)
		saved = template

		entryID, err := gonanoid.New()
		if err != nil {
			return err
		}
		ws.RecordActivity(models.ActivityEntry{
			ID:        entryID,
			Timestamp: now,
			Summary:   fmt.Sprintf("Created template %q", name),
			Detail:    strings.Join(models.PlatformNames(platforms), ", "),
			Category:  models.ActivityCategoryTemplate,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (s *templateService) List(_ context.Context) ([]models.Template, error) {
	return s.st.Snapshot().Templates, nil
}

// Remove deletes the template. Posts already composed from it keep their
// frozen snapshot and are untouched.
func (s *templateService) Remove(ctx context.Context, id string) error {
	if id == "" {
		err := fmt.Errorf("%w: template id is required", ErrValidationFailed)
		slog.Info(err.Error())
		return err
	}

	now := s.clock.Now()
	return s.st.Mutate(ctx, func(ws *models.Workspace) error {
		index := -1
		for i := range ws.Templates {
			if ws.Templates[i].ID == id {
				index = i
				break
			}
		}
		if index < 0 {
			return fmt.Errorf("%w: template %s", ErrNotFound, id)
		}

		name := ws.Templates[index].Name
		ws.Templates = append(ws.Templates[:index], ws.Templates[index+1:]...)

		entryID, err := gonanoid.New()
		if err != nil {
			return err
		}
		ws.RecordActivity(models.ActivityEntry{
			ID:        entryID,
			Timestamp: now,
			Summary:   fmt.Sprintf("Deleted template %q", name),
			Category:  models.ActivityCategoryTemplate,
		})
		return nil
	})
}
