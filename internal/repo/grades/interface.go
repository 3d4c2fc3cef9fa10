// Package grades persists the composite grade payload: per-assessment
// gradings and scores plus the per-term credit totals.
package grades

import (
	"context"

	"github.com/directdev/portal/internal/models"
)

type Repository interface {
	// Replace applies the delete-then-insert cycle to the gradings and
	// scores sub-collections independently, then upserts the credit row.
	// An empty sub-collection leaves the previous generation in place.
	Replace(ctx context.Context, grade *models.Grade) error

	// Credit returns the stored credit totals for a term.
	Credit(ctx context.Context, term string) (*models.Credit, error)
}
