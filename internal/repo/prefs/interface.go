// Package prefs is the preference store: discrete scalars keyed by name.
// It holds the credential triple and the profile/finance-summary fields,
// which are overwritten field-by-field rather than as entities.
package prefs

import "context"

// Keys used by the sync engine.
const (
	KeyCookie         = "cookie"
	KeyUsername       = "username"
	KeyPassword       = "password"
	KeySalt           = "salt"
	KeyMajor          = "major"
	KeyDegree         = "degree"
	KeyBirthday       = "birthday"
	KeyName           = "name"
	KeyStudentID      = "student_id"
	KeyFinanceCharge  = "finance_charge"
	KeyFinancePayment = "finance_payment"
)

// Repository reads and writes named scalar preferences. Get returns def when
// the key is absent.
type Repository interface {
	Get(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
