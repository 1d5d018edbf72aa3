package kernel

import (
	"strconv"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	// ZipCodeMin is the smallest valid 5-digit zip code.
	ZipCodeMin = 10000
	// ZipCodeMax is the largest valid 5-digit zip code.
	ZipCodeMax = 99999
)

// ErrZipCodeIsNotConstructed is returned when attempting to use an improperly initialized ZipCode.
// Zip codes must be created using the NewZipCode constructor to ensure validity.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"zip code must be created via NewZipCode constructor")

// ZipCode represents a postal code identifying a serviceable location.
// It is shared by reference between delivery partners (the set of zip codes
// a partner can serve) and shipments (the destination and event locations).
//
// ZipCode is an immutable value object; the zero value is invalid and will
// fail validation. Use the NewZipCode constructor to create instances.
//
// Example:
//
//	zip, err := kernel.NewZipCode(11001)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(zip) // Output: 11001
type ZipCode struct { //nolint:recvcheck //using for validation
	code  int
	guard guard.ConstructorGuard
}

// NewZipCode creates a new ZipCode from its numeric value.
// The value must be a 5-digit code in the range [ZipCodeMin, ZipCodeMax].
// Returns an error if the value is outside the valid bounds.
//
// Example:
//
//	zip, err := NewZipCode(11001)
//	if err != nil {
//	    return fmt.Errorf("invalid destination: %w", err)
//	}
func NewZipCode(code int) (ZipCode, error) {
	zip := ZipCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := zip.setCode(code); err != nil {
		return ZipCode{}, err
	}

	return zip, nil
}

// Value returns the numeric value of the zip code.
func (z ZipCode) Value() int {
	return z.code
}

// String returns the decimal string representation of the zip code.
// This method implements the fmt.Stringer interface.
func (z ZipCode) String() string {
	return strconv.Itoa(z.code)
}

// IsEqual compares two zip codes by value.
// Returns true if both represent the same postal code.
func (z ZipCode) IsEqual(other ZipCode) bool {
	return z.code == other.code
}

// Validate checks if the ZipCode was properly constructed via NewZipCode.
// Returns ErrZipCodeIsNotConstructed for zero-value instances.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// setCode validates and sets the numeric value.
// This is a private method used only during construction.
func (z *ZipCode) setCode(code int) error {
	if code < ZipCodeMin || code > ZipCodeMax {
		return errs.NewValueIsOutOfRangeError("zip code", code, ZipCodeMin, ZipCodeMax)
	}
	z.code = code
	return nil
}
