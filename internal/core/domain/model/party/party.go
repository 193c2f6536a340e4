// Package party contains the counterparty aggregate that delivery orders are
// issued against.
package party

import (
	"errors"
	"strings"
	"time"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"
)

var (
	// ErrPartyIsNotConstructed is returned when a Party instance was not
	// created through the NewParty or RestoreParty factory methods.
	ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty or RestoreParty")
)

// Party is a counterparty that delivery orders reference. Its number is a
// business identifier unique across all parties.
type Party struct {
	id        kernel.UUID
	number    string
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewParty creates a new Party with a unique business number and display name.
func NewParty(id kernel.UUID, number, name string, createdAt time.Time) (*Party, error) {
	party := &Party{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		party.setID(id),
		party.setNumber(number),
		party.setName(name),
	); err != nil {
		return nil, err
	}

	return party, nil
}

// RestoreParty reconstructs a Party from persistence.
func RestoreParty(id kernel.UUID, number, name string, createdAt time.Time) (*Party, error) {
	return NewParty(id, number, name, createdAt)
}

// Validate ensures the Party instance was properly constructed through a
// factory method.
func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

// IsEqual compares two parties by their unique identifiers.
func (p *Party) IsEqual(other *Party) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the party's unique identifier.
func (p *Party) ID() kernel.UUID {
	return p.id
}

// Number returns the unique business number.
func (p *Party) Number() string {
	return p.number
}

// Name returns the display name.
func (p *Party) Name() string {
	return p.name
}

// CreatedAt returns the creation timestamp.
func (p *Party) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Party) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Party) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("partyNumber")
	}
	p.number = number
	return nil
}

func (p *Party) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("partyName")
	}
	p.name = name
	return nil
}
