package models

import (
	"strings"
	"time"
)

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedin  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTiktok    Platform = "tiktok"
	PlatformYoutube   Platform = "youtube"
)

type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Platforms   []Platform `json:"platforms"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UsageCount  int        `json:"usage_count"`
}

// NormalizePlatforms trims, drops empties and deduplicates while keeping
// the order the caller supplied.
func NormalizePlatforms(raw []string) []Platform {
	seen := make(map[Platform]struct{}, len(raw))
	platforms := make([]Platform, 0, len(raw))
	for _, r := range raw {
		p := Platform(strings.TrimSpace(r))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		platforms = append(platforms, p)
	}
	return platforms
}

func PlatformNames(platforms []Platform) []string {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, string(p))
	}
	return names
}
