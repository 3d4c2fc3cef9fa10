// Package terms persists the fetched academic-term sequence.
package terms

import (
	"context"

	"github.com/directdev/portal/internal/models"
)

type Repository interface {
	// Upsert inserts or updates each term by its value.
	Upsert(ctx context.Context, terms []*models.Term) error
	// List returns all terms, newest first.
	List(ctx context.Context) ([]*models.Term, error)
}
