package user

import (
	"errors"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

var (
	// ErrResetTokenIsNotConstructed is returned when a ResetToken instance was
	// not created through the NewResetToken or RestoreResetToken factory
	// methods.
	ErrResetTokenIsNotConstructed = errors.New(
		"ResetToken must be created via NewResetToken or RestoreResetToken",
	)
)

// ResetToken is a single-use password reset grant. Tokens expire on a
// deadline and are swept from storage by a background job once expired.
type ResetToken struct {
	id        kernel.UUID
	userID    kernel.UUID
	token     string
	expiresAt time.Time
	isUsed    bool
	createdAt time.Time

	isConstructed bool
}

// NewResetToken creates an unused ResetToken for the given user.
func NewResetToken(
	id kernel.UUID,
	userID kernel.UUID,
	token string,
	expiresAt time.Time,
	createdAt time.Time,
) (*ResetToken, error) {
	resetToken := &ResetToken{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		resetToken.setID(id),
		resetToken.setUserID(userID),
		resetToken.setToken(token),
		resetToken.setExpiresAt(expiresAt),
	); err != nil {
		return nil, err
	}

	return resetToken, nil
}

// RestoreResetToken reconstructs a ResetToken from persistence with its
// stored used flag.
func RestoreResetToken(
	id kernel.UUID,
	userID kernel.UUID,
	token string,
	expiresAt time.Time,
	isUsed bool,
	createdAt time.Time,
) (*ResetToken, error) {
	resetToken, err := NewResetToken(id, userID, token, expiresAt, createdAt)
	if err != nil {
		return nil, err
	}
	resetToken.isUsed = isUsed
	return resetToken, nil
}

// Validate ensures the ResetToken instance was properly constructed through a
// factory method.
func (t *ResetToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrResetTokenIsNotConstructed
	}
	return nil
}

// ID returns the token's unique identifier.
func (t *ResetToken) ID() kernel.UUID {
	return t.id
}

// UserID returns the account the token was issued for.
func (t *ResetToken) UserID() kernel.UUID {
	return t.userID
}

// Token returns the opaque token value.
func (t *ResetToken) Token() string {
	return t.token
}

// ExpiresAt returns the expiry deadline.
func (t *ResetToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// IsUsed reports whether the token has already been redeemed.
func (t *ResetToken) IsUsed() bool {
	return t.isUsed
}

// CreatedAt returns the creation timestamp.
func (t *ResetToken) CreatedAt() time.Time {
	return t.createdAt
}

// IsExpired reports whether the token expired at the given instant.
func (t *ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

// MarkUsed redeems the token. A token can be redeemed at most once.
func (t *ResetToken) MarkUsed() error {
	if t.isUsed {
		return errs.NewValueIsInvalidError("token is invalid")
	}
	t.isUsed = true
	return nil
}

func (t *ResetToken) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *ResetToken) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	t.userID = userID
	return nil
}

func (t *ResetToken) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	t.token = token
	return nil
}

func (t *ResetToken) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expiresAt")
	}
	t.expiresAt = expiresAt
	return nil
}
