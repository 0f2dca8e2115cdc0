// Package entities contains domain entities used across the application.
package entities

import "strings"

// Term is a single glossary entry extracted from the upstream page.
type Term struct {
	Name       string `json:"name"`               // term name, unique within one extraction
	Definition string `json:"definition"`         // descriptive text with illustrative blocks removed
	ImageURL   string `json:"imageUrl,omitempty"` // absolute URL of the illustrative image, if any
}

// Valid reports whether both name and definition are present.
func (t Term) Valid() bool {
	return t.Name != "" && t.Definition != ""
}

// Key returns the normalized name used to compare terms.
func (t Term) Key() string {
	return NameKey(t.Name)
}

// NameKey normalizes a term name: lower-cased, whitespace runs collapsed.
func NameKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
