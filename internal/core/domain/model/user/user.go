// Package user contains the account aggregate for workflow actors and the
// password reset token issued against an account.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is a workflow actor. The department determines which delivery order
// transitions the user may perform; deactivated users keep their records but
// cannot act.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	department   kernel.Department
	isActive     bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an active User belonging to the given department. The
// password hash is stored verbatim; hashing is the caller's concern.
func NewUser(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	department kernel.Department,
	createdAt time.Time,
) (*User, error) {
	user := &User{
		isActive:      true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setDepartment(department),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence with its stored active flag.
func RestoreUser(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	department kernel.Department,
	isActive bool,
	createdAt time.Time,
) (*User, error) {
	user, err := NewUser(id, username, email, passwordHash, department, createdAt)
	if err != nil {
		return nil, err
	}
	user.isActive = isActive
	return user, nil
}

// Validate ensures the User instance was properly constructed through a
// factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the unique email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Department returns the department the user acts for.
func (u *User) Department() kernel.Department {
	return u.department
}

// IsActive reports whether the account may act on delivery orders.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Activate re-enables a deactivated account.
func (u *User) Activate() {
	u.isActive = true
}

// Deactivate disables the account without removing it.
func (u *User) Deactivate() {
	u.isActive = false
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email is invalid",
			fmt.Errorf("%s is not an email address", email),
		)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	u.department = department
	return nil
}
