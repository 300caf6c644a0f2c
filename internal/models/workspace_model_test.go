package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActivityKeepsNewestForty(t *testing.T) {
	ws := &Workspace{}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 1; i <= 50; i++ {
		ws.RecordActivity(ActivityEntry{
			ID:        fmt.Sprintf("entry-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Summary:   "something happened",
			Category:  ActivityCategoryPost,
		})
	}

	require.Len(t, ws.Activity, ActivityLimit)
	assert.Equal(t, "entry-50", ws.Activity[0].ID)
	assert.Equal(t, "entry-11", ws.Activity[ActivityLimit-1].ID)
}

func TestCloneIsDeepCopy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ws := SeedWorkspace(now)
	scheduledAt := now.Add(time.Hour)
	ws.Posts = []Post{{
		ID:          "post-1",
		Values:      map[string]string{"a": "x"},
		Platforms:   []Platform{PlatformTwitter},
		ScheduledAt: &scheduledAt,
		Status:      PostStatusPending,
		CreatedAt:   now,
		Reviewers:   []string{"dana"},
	}}

	clone := ws.Clone()
	clone.Templates[0].Name = "changed"
	clone.Templates[0].Tags[0] = "changed"
	clone.Posts[0].Values["a"] = "changed"
	clone.Posts[0].Platforms[0] = PlatformYoutube
	*clone.Posts[0].ScheduledAt = now.Add(48 * time.Hour)

	assert.Equal(t, "Product Launch Pulse", ws.Templates[0].Name)
	assert.Equal(t, "launch", ws.Templates[0].Tags[0])
	assert.Equal(t, "x", ws.Posts[0].Values["a"])
	assert.Equal(t, PlatformTwitter, ws.Posts[0].Platforms[0])
	assert.Equal(t, scheduledAt, *ws.Posts[0].ScheduledAt)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, PostStatusPending.CanAdvanceTo(PostStatusApproved))
	assert.True(t, PostStatusApproved.CanAdvanceTo(PostStatusScheduled))
	assert.True(t, PostStatusApproved.CanAdvanceTo(PostStatusPublished))
	assert.True(t, PostStatusScheduled.CanAdvanceTo(PostStatusPublished))

	// Nothing moves backwards or re-enters its own state.
	assert.False(t, PostStatusApproved.CanAdvanceTo(PostStatusApproved))
	assert.False(t, PostStatusScheduled.CanAdvanceTo(PostStatusApproved))
	assert.False(t, PostStatusPublished.CanAdvanceTo(PostStatusApproved))
	assert.False(t, PostStatusPublished.CanAdvanceTo(PostStatusScheduled))
	assert.False(t, PostStatusPending.CanAdvanceTo(PostStatusScheduled))
	assert.False(t, PostStatusPending.CanAdvanceTo(PostStatusPublished))
	assert.False(t, PostStatusPending.CanAdvanceTo(PostStatusPending))
}

func TestStatusRankOrder(t *testing.T) {
	assert.Less(t, PostStatusPending.Rank(), PostStatusApproved.Rank())
	assert.Less(t, PostStatusApproved.Rank(), PostStatusScheduled.Rank())
	assert.Less(t, PostStatusScheduled.Rank(), PostStatusPublished.Rank())
	assert.Equal(t, -1, PostStatus("bogus").Rank())
}

func TestSeedWorkspace(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ws := SeedWorkspace(now)

	require.Len(t, ws.Templates, 2)
	assert.Equal(t, "Product Launch Pulse", ws.Templates[0].Name)
	assert.Equal(t, 3, ws.Templates[0].UsageCount)
	assert.Empty(t, ws.Posts)
	assert.Empty(t, ws.Activity)
	assert.Equal(t, SchemaVersion, ws.Version)
}

func TestNormalizePlatforms(t *testing.T) {
	platforms := NormalizePlatforms([]string{" twitter ", "twitter", "", "linkedin"})
	assert.Equal(t, []Platform{PlatformTwitter, PlatformLinkedin}, platforms)
}
