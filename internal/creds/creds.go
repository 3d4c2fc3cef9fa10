// Package creds manages the stored credential triple: username, password and
// the mutable session cookie. The password is sealed at rest with a key
// derived from the username and a per-device salt; the cookie is plain, it
// is short-lived server state.
package creds

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/directdev/portal/internal/common"
	"github.com/directdev/portal/internal/cryptox"
	"github.com/directdev/portal/internal/models"
	"github.com/directdev/portal/internal/repo/prefs"
)

type Service struct {
	prefs prefs.Repository
}

func NewService(p prefs.Repository) *Service {
	return &Service{prefs: p}
}

// Save stores the credential pair, sealing the password under a fresh salt.
// The session cookie is reset: a new account starts unauthenticated.
func (s *Service) Save(ctx context.Context, username, password string) error {
	salt, err := cryptox.NewSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	sealed, err := cryptox.Seal([]byte(password), cryptox.DeriveKey([]byte(username), salt))
	if err != nil {
		return fmt.Errorf("seal password: %w", err)
	}

	if err := s.prefs.Set(ctx, prefs.KeyUsername, username); err != nil {
		return err
	}
	if err := s.prefs.Set(ctx, prefs.KeySalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return err
	}
	if err := s.prefs.Set(ctx, prefs.KeyPassword, base64.StdEncoding.EncodeToString(sealed)); err != nil {
		return err
	}
	return s.prefs.Set(ctx, prefs.KeyCookie, "")
}

// Load reads the stored credentials, unsealing the password. Returns
// common.ErrNotSignedIn when no username has been saved.
func (s *Service) Load(ctx context.Context) (*models.Credentials, error) {
	username, err := s.prefs.Get(ctx, prefs.KeyUsername, "")
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, common.ErrNotSignedIn
	}

	saltB64, err := s.prefs.Get(ctx, prefs.KeySalt, "")
	if err != nil {
		return nil, err
	}
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}

	sealedB64, err := s.prefs.Get(ctx, prefs.KeyPassword, "")
	if err != nil {
		return nil, err
	}
	sealed, err := base64.StdEncoding.DecodeString(sealedB64)
	if err != nil {
		return nil, fmt.Errorf("decode password: %w", err)
	}

	password, err := cryptox.Open(sealed, cryptox.DeriveKey([]byte(username), salt))
	if err != nil {
		return nil, fmt.Errorf("unseal password: %w", err)
	}

	cookie, err := s.prefs.Get(ctx, prefs.KeyCookie, "")
	if err != nil {
		return nil, err
	}

	return &models.Credentials{Username: username, Password: string(password), Cookie: cookie}, nil
}

// SetCookie replaces the stored session cookie. An empty cookie is ignored:
// a sign-in response without a Set-Cookie header keeps the prior value.
func (s *Service) SetCookie(ctx context.Context, cookie string) error {
	if cookie == "" {
		return nil
	}
	return s.prefs.Set(ctx, prefs.KeyCookie, cookie)
}

// Cookie returns the current session cookie, empty when none is stored.
func (s *Service) Cookie(ctx context.Context) (string, error) {
	return s.prefs.Get(ctx, prefs.KeyCookie, "")
}
