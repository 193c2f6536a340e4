package commands

import (
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/guard"
)

var (
	ErrCreatePartyCommandIsNotConstructed = errors.New(
		"CreatePartyCommand must be created via NewCreatePartyCommand constructor",
	)
	ErrPartyNumberIsRequired = errors.New("party number is required")
	ErrPartyNameIsRequired   = errors.New("party name is required")
)

// CreatePartyCommand represents a request to register a new counterparty.
type CreatePartyCommand struct { //nolint:recvcheck //using for validation
	partyID kernel.UUID
	number  string
	name    string

	guard guard.ConstructorGuard
}

// NewCreatePartyCommand creates a command to register a new party with a
// unique business number.
func NewCreatePartyCommand(partyID kernel.UUID, number, name string) (CreatePartyCommand, error) {
	command := CreatePartyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartyID(partyID),
		command.setNumber(number),
		command.setName(name),
	); err != nil {
		return CreatePartyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartyCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartyCommandIsNotConstructed)
}

// PartyID returns the identifier for the new party.
func (c CreatePartyCommand) PartyID() kernel.UUID {
	return c.partyID
}

// Number returns the unique business number.
func (c CreatePartyCommand) Number() string {
	return c.number
}

// Name returns the display name.
func (c CreatePartyCommand) Name() string {
	return c.name
}

func (c *CreatePartyCommand) setPartyID(partyID kernel.UUID) error {
	if err := partyID.Validate(); err != nil {
		return err
	}

	c.partyID = partyID
	return nil
}

func (c *CreatePartyCommand) setNumber(number string) error {
	if number == "" {
		return ErrPartyNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreatePartyCommand) setName(name string) error {
	if name == "" {
		return ErrPartyNameIsRequired
	}

	c.name = name
	return nil
}
