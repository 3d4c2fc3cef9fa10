// Package api implements the typed network calls against the academic-records
// service. All calls take the current session cookie explicitly; nothing in
// this package caches authentication state.
package api

import (
	"context"

	"github.com/directdev/portal/internal/models"
)

// Client is the transport capability the sync engine depends on: perform a
// declared call, get a typed response or an error.
type Client interface {
	// GetTokens performs the single unauthenticated call that yields the
	// anti-forgery token pair required before sign-in.
	GetTokens(ctx context.Context) (*models.Tokens, error)

	// SignIn exchanges credentials, tokens and the prior cookie for an
	// authenticated session. The returned cookie is empty when the response
	// carried no Set-Cookie header.
	SignIn(ctx context.Context, username, password string, tokens *models.Tokens, cookie string) (*models.AuthResult, error)

	// Bootstrap performs the one-off initialization call of the INIT flow.
	Bootstrap(ctx context.Context, cookie string) error

	GetTerms(ctx context.Context, cookie string) ([]*models.Term, error)
	GetSessions(ctx context.Context, cookie string) ([]*models.Session, error)
	GetFinances(ctx context.Context, cookie string) ([]*models.Finance, error)
	GetFinanceSummary(ctx context.Context, cookie string) (*models.FinanceSummary, error)
	GetExams(ctx context.Context, req models.ExamRequest, cookie string) ([]*models.Exam, error)
	GetGrades(ctx context.Context, term string, cookie string) (*models.Grade, error)
	GetProfile(ctx context.Context, cookie string) (*models.Profile, error)
	GetResources(ctx context.Context, cookie string, courses []*models.Course) ([]*models.Resource, error)
}
