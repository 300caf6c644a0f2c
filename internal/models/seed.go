package models

import "time"

// SeedWorkspace is the fixed starting state used when no snapshot has been
// persisted yet, or when the stored one cannot be decoded: two example
// templates, no posts, an empty journal.
func SeedWorkspace(now time.Time) *Workspace {
	return &Workspace{
		Version: SchemaVersion,
		Templates: []Template{
			{
				ID:          "tpl-seed-launch",
				Name:        "Product Launch Pulse",
				Description: "Launch announcement with a tracked link and urgency hook.",
				Platforms:   []Platform{PlatformTwitter, PlatformLinkedin},
				Content:     "🚀 {product} is live! {highlight} Grab it before {deadline}: {link}",
				Tags:        []string{"launch", "announcement"},
				CreatedAt:   now,
				UpdatedAt:   now,
				UsageCount:  3,
			},
			{
				ID:          "tpl-seed-digest",
				Name:        "Weekly Community Digest",
				Description: "Roundup of the week's top community story.",
				Platforms:   []Platform{PlatformInstagram, PlatformFacebook},
				Content:     "This week at {community}: {top_story}. Full digest 👉 {link}",
				Tags:        []string{"digest", "community"},
				CreatedAt:   now,
				UpdatedAt:   now,
				UsageCount:  0,
			},
		},
		Posts:    []Post{},
		Activity: []ActivityEntry{},
	}
}
