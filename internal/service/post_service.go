package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/placeholder"
	"github.com/draftdeck/draftdeck/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ScheduledAtLayout is the datetime-local layout the composer submits.
const ScheduledAtLayout = "2006-01-02T15:04"

type PostService interface {
	Compose(ctx context.Context, in *transfer.PostComposition) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	PostInfo(ctx context.Context, id string) (*models.Post, error)
	Approve(ctx context.Context, id string) (*models.Post, error)
	MarkScheduled(ctx context.Context, id string) (*models.Post, error)
	Publish(ctx context.Context, id string) (*models.Post, error)
	Remove(ctx context.Context, id string) error
}

type postService struct {
	st    *State
	clock Clock
}

func NewPostService(st *State, clock Clock) PostService {
	return &postService{st: st, clock: clock}
}

// Compose materializes a template into a pending post. The final message is
// merged once, from the template content as it is right now, and the
// template name is snapshotted; later edits or deletion of the template
// never touch the post. The source template's usage counter goes up by
// exactly one.
func (s *postService) Compose(ctx context.Context, in *transfer.PostComposition) (*models.Post, error) {
	if in == nil || in.TemplateID == "" {
		err := fmt.Errorf("%w: template id is required", ErrValidationFailed)
		slog.Info(err.Error())
		return nil, err
	}

	var scheduledAt *time.Time
	if in.ScheduledAt != "" {
		parsed, err := time.Parse(ScheduledAtLayout, in.ScheduledAt)
		if err != nil {
			err = fmt.Errorf("%w: invalid scheduled time format: %v", ErrValidationFailed, err)
			slog.Info(err.Error())
			return nil, err
		}
		scheduledAt = &parsed
	}

	now := s.clock.Now()

	var composed models.Post
	err := s.st.Mutate(ctx, func(ws *models.Workspace) error {
		template := ws.FindTemplate(in.TemplateID)
		if template == nil {
			return fmt.Errorf("%w: template %s", ErrNotFound, in.TemplateID)
		}

		platforms := models.NormalizePlatforms(in.Platforms)
		if len(platforms) == 0 {
			platforms = append([]models.Platform(nil), template.Platforms...)
		}

		values := make(map[string]string, len(in.Values))
		for k, v := range in.Values {
			values[k] = v
		}

		postID, err := gonanoid.New()
		if err != nil {
			return err
		}
		post := models.Post{
			ID:           postID,
			TemplateID:   template.ID,
			TemplateName: template.Name,
			Values:       values,
			FinalMessage: placeholder.Merge(template.Content, values),
			Platforms:    platforms,
			ScheduledAt:  scheduledAt,
			Status:       models.PostStatusPending,
			CreatedAt:    now,
			Notes:        in.Notes,
			MediaURL:     in.MediaURL,
			Reviewers:    append([]string(nil), in.Reviewers...),
		}
		ws.Posts = append([]models.Post{post}, ws.Posts...)
		template.UsageCount++
		composed = post

		entryID, err := gonanoid.New()
		if err != nil {
			return err
		}
		ws.RecordActivity(models.ActivityEntry{
			ID:        entryID,
			Timestamp: now,
			Summary:   fmt.Sprintf("Drafted post from %q", template.Name),
			Detail:    strings.Join(models.PlatformNames(platforms), ", "),
			Category:  models.ActivityCategoryPost,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &composed, nil
}

func (s *postService) List(_ context.Context) ([]models.Post, error) {
	return s.st.Snapshot().Posts, nil
}

func (s *postService) PostInfo(_ context.Context, id string) (*models.Post, error) {
	ws := s.st.Snapshot()
	post := ws.FindPost(id)
	if post == nil {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
	}
	return post, nil
}

// Approve moves a pending post to approved and stamps approved_at.
func (s *postService) Approve(ctx context.Context, id string) (*models.Post, error) {
	now := s.clock.Now()
	return s.transition(ctx, id, models.PostStatusApproved, func(ws *models.Workspace, post *models.Post) error {
		post.ApprovedAt = &now

		return s.recordTransition(ws, now, fmt.Sprintf("Approved post from %q", post.TemplateName),
			strings.Join(models.PlatformNames(post.Platforms), ", "))
	})
}

// MarkScheduled moves an approved post to scheduled. The scheduled time was
// supplied at compose time and is not restamped; a post without one cannot
// be scheduled.
func (s *postService) MarkScheduled(ctx context.Context, id string) (*models.Post, error) {
	now := s.clock.Now()
	return s.transition(ctx, id, models.PostStatusScheduled, func(ws *models.Workspace, post *models.Post) error {
		detail := ""
		if post.ScheduledAt != nil {
			detail = post.ScheduledAt.Format(ScheduledAtLayout)
		}
		return s.recordTransition(ws, now, fmt.Sprintf("Scheduled post from %q", post.TemplateName), detail)
	})
}

// Publish moves an approved or scheduled post to published and stamps
// published_at. Delivery to the platforms themselves is out of scope; the
// status flip is the whole effect.
func (s *postService) Publish(ctx context.Context, id string) (*models.Post, error) {
	now := s.clock.Now()
	return s.transition(ctx, id, models.PostStatusPublished, func(ws *models.Workspace, post *models.Post) error {
		post.PublishedAt = &now

		return s.recordTransition(ws, now, fmt.Sprintf("Published post from %q", post.TemplateName),
			strings.Join(models.PlatformNames(post.Platforms), ", "))
	})
}

func (s *postService) transition(ctx context.Context, id string, next models.PostStatus, apply func(ws *models.Workspace, post *models.Post) error) (*models.Post, error) {
	if id == "" {
		err := fmt.Errorf("%w: post id is required", ErrValidationFailed)
		slog.Info(err.Error())
		return nil, err
	}

	var updated models.Post
	err := s.st.Mutate(ctx, func(ws *models.Workspace) error {
		post := ws.FindPost(id)
		if post == nil {
			return fmt.Errorf("%w: post %s", ErrNotFound, id)
		}
		if !post.Status.CanAdvanceTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, post.Status, next)
		}
		if next == models.PostStatusScheduled && post.ScheduledAt == nil {
			return fmt.Errorf("%w: post has no scheduled time", ErrInvalidTransition)
		}

		post.Status = next
		if err := apply(ws, post); err != nil {
			return err
		}
		updated = *post
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *postService) recordTransition(ws *models.Workspace, now time.Time, summary, detail string) error {
	entryID, err := gonanoid.New()
	if err != nil {
		return err
	}
	ws.RecordActivity(models.ActivityEntry{
		ID:        entryID,
		Timestamp: now,
		Summary:   summary,
		Detail:    detail,
		Category:  models.ActivityCategoryPost,
	})
	return nil
}

// Remove deletes a post from any status. The journal entry is deliberately
// generic; removal carries no per-post detail.
func (s *postService) Remove(ctx context.Context, id string) error {
	if id == "" {
		err := fmt.Errorf("%w: post id is required", ErrValidationFailed)
		slog.Info(err.Error())
		return err
	}

	now := s.clock.Now()
	return s.st.Mutate(ctx, func(ws *models.Workspace) error {
		index := -1
		for i := range ws.Posts {
			if ws.Posts[i].ID == id {
				index = i
				break
			}
		}
		if index < 0 {
			return fmt.Errorf("%w: post %s", ErrNotFound, id)
		}
		ws.Posts = append(ws.Posts[:index], ws.Posts[index+1:]...)

		return s.recordTransition(ws, now, "Post removed", "")
	})
}
