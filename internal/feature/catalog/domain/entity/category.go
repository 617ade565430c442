// Package entity defines the domain models for the catalog feature.
package entity

// Category groups courses. Its name is unique.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
