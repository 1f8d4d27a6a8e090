/* selection.go
 * Contains the template selection strategy. A profile either has a single template set used for every match, or a
 * men/women variant pair picked per match by league type
 * Authors: Zachary Bower
 */

package logic

import "matchpost-bot/api/shared"

// TemplateSelector picks the template set used to render a match
type TemplateSelector interface {
	Select(league shared.LeagueType) shared.TemplateSet
}

// defaultSelector uses the same template set for every match regardless of league
type defaultSelector struct {
	set shared.TemplateSet
}

func (d defaultSelector) Select(shared.LeagueType) shared.TemplateSet {
	return d.set
}

// variantSelector picks the men or women variant. Matches without a league fall back to the profile default
type variantSelector struct {
	men      shared.TemplateSet
	women    shared.TemplateSet
	fallback shared.TemplateSet
}

func (v variantSelector) Select(league shared.LeagueType) shared.TemplateSet {
	switch league {
	case shared.LeagueWomen:
		return v.women
	case shared.LeagueMen:
		return v.men
	}
	return v.fallback
}

// SelectorFor builds the selector for a profile.
// Preconditions: Receives a template profile
// Postconditions: Returns a variant selector when both the men and women variants are set, otherwise a selector that
// always returns the default set. A profile without a default set falls back to whichever variant it has
func SelectorFor(profile shared.TemplateProfile) TemplateSelector {
	fallback := DefaultTemplateSet(profile)
	if profile.HasVariants() {
		return variantSelector{men: *profile.Men, women: *profile.Women, fallback: fallback}
	}
	return defaultSelector{set: fallback}
}

// DefaultTemplateSet returns the set used when no league applies, i.e. the single match form
func DefaultTemplateSet(profile shared.TemplateProfile) shared.TemplateSet {
	switch {
	case profile.Default != nil:
		return *profile.Default
	case profile.Men != nil:
		return *profile.Men
	case profile.Women != nil:
		return *profile.Women
	}
	return shared.TemplateSet{}
}
