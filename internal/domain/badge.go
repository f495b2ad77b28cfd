package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BadgeDefinition is a catalog row; the ledger reads it, never writes it.
type BadgeDefinition struct {
	ID          uuid.UUID
	Name        string
	Description string
	XPThreshold int
}

// OwnedBadge is a badge the user has earned.
type OwnedBadge struct {
	BadgeID  uuid.UUID
	Name     string
	EarnedAt time.Time
}

// BadgeThreshold maps a cumulative XP threshold to a badge name.
type BadgeThreshold struct {
	XPThreshold int
	Name        string
}

// DefaultBadgeThresholds matches the badge_definitions seed migration.
var DefaultBadgeThresholds = []BadgeThreshold{
	{XPThreshold: 100, Name: "Rookie"},
	{XPThreshold: 500, Name: "Scholar"},
	{XPThreshold: 1000, Name: "Practitioner"},
	{XPThreshold: 2500, Name: "Expert"},
	{XPThreshold: 5000, Name: "Master"},
}

// ParseBadgeThresholds parses "100:Rookie,500:Scholar" into thresholds
// sorted ascending by XP. An empty string returns nil.
func ParseBadgeThresholds(raw string) ([]BadgeThreshold, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]BadgeThreshold, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		xpRaw, name, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("invalid threshold %q: want <xp>:<name>", p)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid threshold %q: empty name", p)
		}
		xp, err := strconv.Atoi(strings.TrimSpace(xpRaw))
		if err != nil || xp < 0 {
			return nil, fmt.Errorf("invalid threshold %q: xp must be a non-negative integer", p)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate badge name %q", name)
		}
		seen[name] = struct{}{}
		out = append(out, BadgeThreshold{XPThreshold: xp, Name: name})
	}

	slices.SortStableFunc(out, func(a, b BadgeThreshold) int {
		return a.XPThreshold - b.XPThreshold
	})
	return out, nil
}
