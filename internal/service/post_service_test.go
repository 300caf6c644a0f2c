package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/draftdeck/draftdeck/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func launchValues() map[string]string {
	return map[string]string{
		"product":   "DraftDeck",
		"highlight": "Schedule a week of posts in minutes.",
		"deadline":  "Friday",
		"link":      "https://example.com/launch",
	}
}

func TestComposeMaterializesTemplate(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	post, err := s.Compose(ctx, &transfer.PostComposition{
		TemplateID: "tpl-seed-launch",
		Values:     launchValues(),
		Notes:      "first launch wave",
		Reviewers:  []string{"dana", "lee"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.PostStatusPending, post.Status)
	assert.Equal(t, "Product Launch Pulse", post.TemplateName)
	assert.Equal(t, "🚀 DraftDeck is live! Schedule a week of posts in minutes. Grab it before Friday: https://example.com/launch", post.FinalMessage)
	assert.NotContains(t, post.FinalMessage, "{")
	// No platforms supplied, so the template's targets carry over.
	assert.Equal(t, []models.Platform{models.PlatformTwitter, models.PlatformLinkedin}, post.Platforms)
	assert.Nil(t, post.ApprovedAt)
	assert.Nil(t, post.PublishedAt)

	ws := st.Snapshot()
	assert.Equal(t, 4, ws.FindTemplate("tpl-seed-launch").UsageCount)
	require.Len(t, ws.Activity, 1)
	assert.Equal(t, `Drafted post from "Product Launch Pulse"`, ws.Activity[0].Summary)
}

func TestComposeUnknownTemplate(t *testing.T) {
	clock := newTestClock()
	st, repo := newSeededState(clock)
	s := service.NewPostService(st, clock)

	_, err := s.Compose(context.Background(), &transfer.PostComposition{TemplateID: "nope"})
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Equal(t, 0, repo.saves)
}

func TestComposeFrozenAgainstLaterTemplateEdits(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	posts := service.NewPostService(st, clock)
	templates := service.NewTemplateService(st, clock)
	ctx := context.Background()

	post, err := posts.Compose(ctx, &transfer.PostComposition{
		TemplateID: "tpl-seed-launch",
		Values:     launchValues(),
	})
	require.NoError(t, err)

	_, err = templates.Save(ctx, &transfer.TemplateSaveRequest{
		ID:      "tpl-seed-launch",
		Name:    "Renamed Template",
		Content: "completely different {body}",
	})
	require.NoError(t, err)

	stored, err := posts.PostInfo(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Product Launch Pulse", stored.TemplateName)
	assert.Equal(t, post.FinalMessage, stored.FinalMessage)
}

func TestUsageCounterIncrementsPerCompose(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-launch", Values: launchValues()})
		require.NoError(t, err)
		_, err = s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-digest"})
		require.NoError(t, err)
	}

	ws := st.Snapshot()
	assert.Equal(t, 6, ws.FindTemplate("tpl-seed-launch").UsageCount)
	assert.Equal(t, 3, ws.FindTemplate("tpl-seed-digest").UsageCount)
}

func TestApproveThenPublish(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	post, err := s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-launch", Values: launchValues()})
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	approved, err := s.Approve(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	clock.Advance(10 * time.Minute)
	published, err := s.Publish(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.False(t, published.PublishedAt.Before(*published.ApprovedAt))
}

func TestScheduleRequiresScheduledTime(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	// No scheduled time at compose: scheduling is off the table.
	post, err := s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-launch", Values: launchValues()})
	require.NoError(t, err)
	_, err = s.Approve(ctx, post.ID)
	require.NoError(t, err)
	_, err = s.MarkScheduled(ctx, post.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	// With one, approved -> scheduled -> published works.
	timed, err := s.Compose(ctx, &transfer.PostComposition{
		TemplateID:  "tpl-seed-launch",
		Values:      launchValues(),
		ScheduledAt: "2026-03-14T09:30",
	})
	require.NoError(t, err)
	require.NotNil(t, timed.ScheduledAt)

	_, err = s.Approve(ctx, timed.ID)
	require.NoError(t, err)
	scheduled, err := s.MarkScheduled(ctx, timed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusScheduled, scheduled.Status)
	// The scheduled timestamp came from compose and is not restamped.
	assert.Equal(t, timed.ScheduledAt, scheduled.ScheduledAt)

	published, err := s.Publish(ctx, timed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, published.Status)
}

func TestComposeRejectsBadScheduledTime(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)

	_, err := s.Compose(context.Background(), &transfer.PostComposition{
		TemplateID:  "tpl-seed-launch",
		ScheduledAt: "next tuesday",
	})
	assert.ErrorIs(t, err, service.ErrValidationFailed)
}

func TestInvalidTransitionsLeaveStateUntouched(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	post, err := s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-launch", Values: launchValues()})
	require.NoError(t, err)

	_, err = s.Publish(ctx, post.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	_, err = s.Approve(ctx, post.ID)
	require.NoError(t, err)
	_, err = s.Approve(ctx, post.ID)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	stored, err := s.PostInfo(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusApproved, stored.Status)

	// The failed attempts journaled nothing: compose + approve only.
	ws := st.Snapshot()
	assert.Len(t, ws.Activity, 2)
}

func TestStatusRankIsMonotonicOverLifetime(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	post, err := s.Compose(ctx, &transfer.PostComposition{
		TemplateID:  "tpl-seed-launch",
		Values:      launchValues(),
		ScheduledAt: "2026-03-14T09:30",
	})
	require.NoError(t, err)

	observed := []models.PostStatus{post.Status}
	for _, step := range []func(context.Context, string) (*models.Post, error){s.Approve, s.MarkScheduled, s.Publish} {
		updated, err := step(ctx, post.ID)
		require.NoError(t, err)
		observed = append(observed, updated.Status)
	}

	for i := 1; i < len(observed); i++ {
		assert.Greater(t, observed[i].Rank(), observed[i-1].Rank())
	}
}

func TestRemovePostFromAnyStatus(t *testing.T) {
	clock := newTestClock()
	st, _ := newSeededState(clock)
	s := service.NewPostService(st, clock)
	ctx := context.Background()

	pending, err := s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-launch", Values: launchValues()})
	require.NoError(t, err)
	published, err := s.Compose(ctx, &transfer.PostComposition{TemplateID: "tpl-seed-digest"})
	require.NoError(t, err)
	_, err = s.Approve(ctx, published.ID)
	require.NoError(t, err)
	_, err = s.Publish(ctx, published.ID)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, pending.ID))
	require.NoError(t, s.Remove(ctx, published.ID))

	ws := st.Snapshot()
	assert.Empty(t, ws.Posts)
	// Removal entries carry no per-post detail.
	assert.Equal(t, "Post removed", ws.Activity[0].Summary)
	assert.Empty(t, ws.Activity[0].Detail)

	err = s.Remove(ctx, pending.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
