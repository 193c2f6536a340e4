package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired     = errors.New("username is required")
	ErrEmailIsRequired        = errors.New("email is required")
	ErrPasswordHashIsRequired = errors.New("password hash is required")
)

// RegisterUserCommand represents a request to register a new workflow actor.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	username     string
	email        string
	passwordHash string
	department   kernel.Department

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user belonging
// to the given department.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username string,
	email string,
	passwordHash string,
	department kernel.Department,
) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setUsername(username),
		command.setEmail(email),
		command.setPasswordHash(passwordHash),
		command.setDepartment(department),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the unique login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the unique email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// PasswordHash returns the already-hashed password.
func (c RegisterUserCommand) PasswordHash() string {
	return c.passwordHash
}

// Department returns the department the user will act for.
func (c RegisterUserCommand) Department() kernel.Department {
	return c.department
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	c.passwordHash = passwordHash
	return nil
}

func (c *RegisterUserCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}
