// Package match computes compatibility between two event profiles. The
// scorer is pure: no store access, no side effects, deterministic for a
// given pair of profiles.
package match

import (
	"fmt"
	"strings"

	"github.com/techconnect/backend/internal/domain"
)

const (
	TypeSkills        = "skills"
	TypeInterests     = "interests"
	TypeComplementary = "complementary"
)

const (
	IconSkills        = "bolt"
	IconInterests     = "auto_awesome"
	IconComplementary = "lightbulb"
	IconSameEvent     = "domain"
)

const (
	skillPoints         = 3
	interestPoints      = 2
	complementaryPoints = 4

	// complementaryFloor is the minimum score once either lookingFor
	// direction hits.
	complementaryFloor = 85
	// fallbackScore is the score for pairs with nothing in common beyond
	// attending the same event.
	fallbackScore = 40
	maxScore      = 99
)

// Result is a derived, never-persisted measurement of one candidate
// against the viewer.
type Result struct {
	Score           int      `json:"score"`
	MatchType       string   `json:"match_type"`
	Explanation     string   `json:"explanation"`
	Icon            string   `json:"icon"`
	SharedTags      []string `json:"shared_tags"`
	IsComplementary bool     `json:"-"`
	TheyLookForMe   bool     `json:"-"`
}

// Score measures viewer against candidate. Shared skills count 3 points,
// shared interests 2, and a lookingFor tag contained in the other side's
// role title 4 per direction. The raw total is normalized against the
// pair's maximum attainable points and mapped to 0-99.
func Score(viewer, candidate *domain.Profile) Result {
	sharedSkills := intersect(candidate.Skills, viewer.Skills)
	sharedInterests := intersect(candidate.Interests, viewer.Interests)

	raw := len(sharedSkills)*skillPoints + len(sharedInterests)*interestPoints

	res := Result{
		IsComplementary: roleWanted(viewer.LookingFor, candidate.Role()),
		TheyLookForMe:   roleWanted(candidate.LookingFor, viewer.Role()),
	}
	if res.IsComplementary {
		raw += complementaryPoints
	}
	if res.TheyLookForMe {
		raw += complementaryPoints
	}

	// Per-pair maximum: the larger side of each set bounds the attainable
	// overlap, and each direction with lookingFor tags could add 4.
	denom := maxInt(len(viewer.Skills), len(candidate.Skills))*skillPoints +
		maxInt(len(viewer.Interests), len(candidate.Interests))*interestPoints
	if len(viewer.LookingFor) > 0 {
		denom += complementaryPoints
	}
	if len(candidate.LookingFor) > 0 {
		denom += complementaryPoints
	}
	if denom < 1 {
		denom = 1
	}

	score := (raw*100 + denom/2) / denom // round(raw/denom*100)
	if score > maxScore {
		score = maxScore
	}

	switch {
	case res.IsComplementary || res.TheyLookForMe:
		if score < complementaryFloor {
			score = complementaryFloor
		}
		res.MatchType = TypeComplementary
		res.Icon = IconComplementary
		res.Explanation = complementaryExplanation(&res, viewer, candidate)
		res.SharedTags = truncate(append(sharedInterests, sharedSkills...), 3)
	case len(sharedInterests) >= len(sharedSkills) && len(sharedInterests) > 0:
		res.MatchType = TypeInterests
		res.Icon = IconInterests
		res.Explanation = "Both interested in " + nameTags(sharedInterests)
		res.SharedTags = truncate(append(sharedInterests, sharedSkills...), 4)
	case len(sharedSkills) > 0:
		res.MatchType = TypeSkills
		res.Icon = IconSkills
		res.Explanation = "Both skilled in " + nameTags(sharedSkills)
		res.SharedTags = truncate(append(sharedInterests, sharedSkills...), 3)
	default:
		if score < fallbackScore {
			score = fallbackScore
		}
		res.MatchType = TypeInterests
		res.Icon = IconSameEvent
		res.Explanation = "Attending the same event"
		res.SharedTags = []string{}
	}

	res.Score = score
	return res
}

// intersect returns the entries of a whose lowercase form also appears
// in b, keeping a's original casing and order.
func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[strings.ToLower(s)] = struct{}{}
	}
	var shared []string
	for _, s := range a {
		if _, ok := set[strings.ToLower(s)]; ok {
			shared = append(shared, s)
		}
	}
	return shared
}

// roleWanted reports whether any lookingFor tag appears inside the role
// title, case-insensitively. Containment runs one way only: the tag
// "VC" matches the role "VC Partner", not the reverse.
func roleWanted(lookingFor []string, role string) bool {
	if role == "" {
		return false
	}
	roleLower := strings.ToLower(role)
	for _, tag := range lookingFor {
		if tag == "" {
			continue
		}
		if strings.Contains(roleLower, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

func complementaryExplanation(res *Result, viewer, candidate *domain.Profile) string {
	if res.IsComplementary && candidate.Role() != "" {
		return fmt.Sprintf("They're a %s, just who you're looking for", candidate.Role())
	}
	if viewer.Role() != "" {
		return fmt.Sprintf("You're the %s they're looking for", viewer.Role())
	}
	return "You're who they're looking for"
}

// nameTags formats up to two tags for an explanation line.
func nameTags(tags []string) string {
	if len(tags) >= 2 {
		return tags[0] + " & " + tags[1]
	}
	return tags[0]
}

func truncate(tags []string, n int) []string {
	if tags == nil {
		return []string{}
	}
	if len(tags) > n {
		return tags[:n]
	}
	return tags
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
