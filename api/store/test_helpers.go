/* test_helpers.go
 * Contains test helper functions and sample data for store package tests
 * Authors: Zachary Bower
 */

package store

import "matchpost-bot/api/shared"

// CreateSampleProfile creates a profile with a default template set for testing.
func CreateSampleProfile(name string) shared.TemplateProfile {
	return shared.TemplateProfile{
		Name: name,
		Default: &shared.TemplateSet{
			Title:       "{Team A} vs {Team B} | {Date}",
			Description: "{Team A} take on {Team B} at {Time}",
			Tags:        []string{"#{Team A}", "#{Team B}"},
		},
	}
}

// CreateSampleVariantProfile creates a profile with men and women variants for testing.
func CreateSampleVariantProfile(name string) shared.TemplateProfile {
	return shared.TemplateProfile{
		Name: name,
		Men: &shared.TemplateSet{
			Title: "Men's: {Team A} vs {Team B}",
			Tags:  []string{"#MensBasketball"},
		},
		Women: &shared.TemplateSet{
			Title: "Women's: {Team A} vs {Team B}",
			Tags:  []string{"#WomensBasketball"},
		},
	}
}
