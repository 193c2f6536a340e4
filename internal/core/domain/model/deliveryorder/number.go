package deliveryorder

import (
	"fmt"
	"regexp"
	"strconv"

	"dotrack/internal/pkg/errs"
)

// numberPattern matches the canonical delivery order number format
// DO-<year>-<sequence>, with a zero-padded sequence of at least three digits.
var numberPattern = regexp.MustCompile(`^DO-(\d{4})-(\d{3,})$`)

// Number is the human-facing delivery order identifier, formatted as
// DO-<year>-<sequence> (e.g. DO-2025-001). Sequences are monotonic per year.
//
// Number is a value object; the zero value is invalid and must be created via
// NewNumber or ParseNumber.
type Number struct {
	year     int
	sequence int
}

// NewNumber creates a Number from a year and a per-year sequence.
// The year must be four digits and the sequence positive.
func NewNumber(year, sequence int) (Number, error) {
	if year < 1000 || year > 9999 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"number is invalid",
			fmt.Errorf("%d is not a four-digit year", year),
		)
	}
	if sequence <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"number is invalid",
			fmt.Errorf("sequence %d is not greater than 0", sequence),
		)
	}
	return Number{year: year, sequence: sequence}, nil
}

// ParseNumber parses a Number from its canonical string form. Input that
// would re-render differently, such as an over-padded sequence, is rejected
// so the persisted number always equals the one the caller supplied.
func ParseNumber(s string) (Number, error) {
	match := numberPattern.FindStringSubmatch(s)
	if match == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"number is invalid",
			fmt.Errorf("%q does not match DO-<year>-<sequence>", s),
		)
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number is invalid", err)
	}
	sequence, err := strconv.Atoi(match[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("number is invalid", err)
	}

	number, err := NewNumber(year, sequence)
	if err != nil {
		return Number{}, err
	}
	if number.String() != s {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"number is invalid",
			fmt.Errorf("%q is not in canonical form %q", s, number.String()),
		)
	}

	return number, nil
}

// String returns the canonical form, e.g. DO-2025-001. Sequences above 999
// are rendered without truncation.
func (n Number) String() string {
	return fmt.Sprintf("DO-%04d-%03d", n.year, n.sequence)
}

// Year returns the year component.
func (n Number) Year() int {
	return n.year
}

// Sequence returns the per-year sequence component.
func (n Number) Sequence() int {
	return n.sequence
}

// IsEqual compares two numbers.
func (n Number) IsEqual(other Number) bool {
	return n.year == other.year && n.sequence == other.sequence
}

// Validate checks the Number is properly constructed.
// The zero value is invalid.
func (n Number) Validate() error {
	if n.year == 0 || n.sequence == 0 {
		return errs.NewValueIsRequiredError("number must be created via NewNumber or ParseNumber")
	}
	return nil
}
