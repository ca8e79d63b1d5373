// Package catalog contains the pure business logic for the overridable
// catalogs (categories, framework definitions, saved prompts). This is part
// of the Functional Core - no I/O, only pure functions.
package catalog

import "strings"

// Slugify derives a catalog id from a user-supplied name.
// The format is a business rule: lower-case, spaces become hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

// SlugifyFramework derives a framework definition id from a name.
// Same as Slugify, but parentheses are stripped first so that a name like
// "RICE (Reach Impact Confidence Effort)" yields a clean id.
func SlugifyFramework(name string) string {
	cleaned := strings.NewReplacer("(", "", ")", "").Replace(name)
	return Slugify(cleaned)
}
