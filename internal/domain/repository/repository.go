// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Condition is an equality predicate on a named entity field.
type Condition struct {
	Field string
	Value any
}

// Eq builds a condition matching entities whose field equals value.
// Field names are the lower camel case form of the entity field, e.g. "email" or "customerId".
func Eq(field string, value any) Condition {
	return Condition{Field: field, Value: value}
}

// Repository is the generic persistence contract shared by every entity kind.
type Repository[E any] interface {
	// Add persists a new entity. The passed entity receives its assigned ID.
	// A unique constraint violation is reported as ErrDuplicateEntry.
	Add(ctx context.Context, entity *E) error

	// Find returns every entity matching all conditions. The result may be empty.
	Find(ctx context.Context, conditions ...Condition) ([]*E, error)
}
