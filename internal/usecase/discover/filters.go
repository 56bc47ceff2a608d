package discover

import "strings"

const (
	FilterAll        = "all"
	FilterDevelopers = "developers"
	FilterDesigners  = "designers"
	FilterInvestors  = "investors"
)

// categoryRule is configuration data: a candidate passes when its role
// contains any role fragment or its skills intersect the skill tokens.
type categoryRule struct {
	roleFragments []string
	skillTokens   []string
}

var categoryRules = map[string]categoryRule{
	FilterDevelopers: {
		roleFragments: []string{"engineer", "developer", "dev", "cto"},
		skillTokens:   []string{"react", "typescript", "python", "javascript", "node", "go", "rust"},
	},
	FilterDesigners: {
		roleFragments: []string{"design", "ux", "ui"},
		skillTokens:   []string{"figma", "design", "ux", "ui", "prototyping"},
	},
	FilterInvestors: {
		roleFragments: []string{"invest", "vc", "partner", "capital"},
	},
}

// ValidFilter reports whether the category name is known. An empty
// filter means "all".
func ValidFilter(filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	_, ok := categoryRules[filter]
	return ok
}

func matchesCategory(filter, role string, skills []string) bool {
	rule, ok := categoryRules[filter]
	if !ok {
		return true
	}
	roleLower := strings.ToLower(role)
	for _, fragment := range rule.roleFragments {
		if strings.Contains(roleLower, fragment) {
			return true
		}
	}
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, token := range rule.skillTokens {
			if skillLower == token {
				return true
			}
		}
	}
	return false
}
