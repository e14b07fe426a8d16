package kernel

import (
	"errors"
	"fmt"
	"strings"

	"letterpost/internal/pkg/errs"
	"letterpost/internal/pkg/guard"
)

// SegmentScheme describes the segment boundaries of an OP code as an ordered
// list of segment lengths, most significant segment first. The scheme is
// configuration data: hierarchy depth and code length are adjusted here,
// never through string-slicing constants elsewhere in the code base.
type SegmentScheme []int

// DefaultSegmentScheme is the canonical platform scheme: a full OP code is
// 8 characters split into city, school, area and point segments of 2
// characters each. A code like "BJDX5F01" reads city "BJ", school "DX",
// area "5F", point "01".
var DefaultSegmentScheme = SegmentScheme{2, 2, 2, 2}

// Construction errors for OP code value objects.
var (
	// ErrOPCodeIsNotConstructed is returned when attempting to use an improperly initialized OPCode.
	ErrOPCodeIsNotConstructed = errs.NewValueIsRequiredError(
		"op code must be created via NewOPCode or NewOPCodeWithScheme constructors")
	// ErrPrefixIsNotConstructed is returned when attempting to use an improperly initialized Prefix.
	ErrPrefixIsNotConstructed = errs.NewValueIsRequiredError(
		"prefix must be created via NewPrefix or NewPrefixWithScheme constructors")
	// ErrSchemeIsInvalid is returned when a segment scheme is empty or contains non-positive lengths.
	ErrSchemeIsInvalid = errs.NewValueIsInvalidError("segment scheme")
)

// Validate checks that the scheme has at least one segment and that every
// segment has a positive length.
func (s SegmentScheme) Validate() error {
	if len(s) == 0 {
		return ErrSchemeIsInvalid
	}
	for _, length := range s {
		if length <= 0 {
			return ErrSchemeIsInvalid
		}
	}
	return nil
}

// Depth returns the number of segments in the scheme.
func (s SegmentScheme) Depth() int {
	return len(s)
}

// TotalLength returns the length of a full OP code under this scheme.
func (s SegmentScheme) TotalLength() int {
	total := 0
	for _, length := range s {
		total += length
	}
	return total
}

// PrefixLength returns the character length of a prefix covering the first
// depth segments. Depth must be between 1 and the scheme depth inclusive.
func (s SegmentScheme) PrefixLength(depth int) (int, error) {
	if depth < 1 || depth > len(s) {
		return 0, errs.NewValueIsOutOfRangeError("depth", depth, 1, len(s))
	}
	total := 0
	for _, length := range s[:depth] {
		total += length
	}
	return total, nil
}

// DepthOfLength returns the segment depth corresponding to a prefix of the
// given character length. Returns an error if the length does not land on a
// segment boundary.
func (s SegmentScheme) DepthOfLength(length int) (int, error) {
	total := 0
	for depth, segment := range s {
		total += segment
		if total == length {
			return depth + 1, nil
		}
		if total > length {
			break
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("prefix length",
		fmt.Errorf("%d does not align with a segment boundary", length))
}

// isOPCodeCharset reports whether every character is an uppercase latin
// letter or a digit.
func isOPCodeCharset(value string) bool {
	for _, r := range value {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// OPCode is an immutable value object identifying a physical location in the
// delivery network down to a single point (a building room or a campus
// mailbox). The code decomposes into ordered segments, most significant
// first; a code is a descendant of a Prefix iff it starts with it.
//
// Codes are comparable only by prefix containment and exact equality. There
// is no meaningful ordering between code values.
//
// The zero value of OPCode is invalid and fails validation - use the
// constructors to create instances.
//
// Example:
//
//	code, err := kernel.NewOPCode("BJDX5F01")
//	if err != nil {
//	    // wrong length or charset
//	}
type OPCode struct { //nolint:recvcheck //using for validation
	value string
	depth int
	guard guard.ConstructorGuard
}

// NewOPCode creates an OPCode under the DefaultSegmentScheme.
// The value must have the scheme's full length and contain only uppercase
// latin letters and digits. Malformed input is rejected here, before any
// permission logic can run on it.
func NewOPCode(value string) (OPCode, error) {
	return NewOPCodeWithScheme(value, DefaultSegmentScheme)
}

// NewOPCodeWithScheme creates an OPCode under an explicit segment scheme.
func NewOPCodeWithScheme(value string, scheme SegmentScheme) (OPCode, error) {
	if err := scheme.Validate(); err != nil {
		return OPCode{}, err
	}
	if len(value) != scheme.TotalLength() {
		return OPCode{}, errs.NewValueIsInvalidErrorWithCause("op code",
			fmt.Errorf("%q must be exactly %d characters", value, scheme.TotalLength()))
	}
	if !isOPCodeCharset(value) {
		return OPCode{}, errs.NewValueIsInvalidErrorWithCause("op code",
			fmt.Errorf("%q must contain only characters A-Z and 0-9", value))
	}

	return OPCode{
		value: value,
		depth: scheme.Depth(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the OPCode was properly constructed using a constructor.
func (c OPCode) Validate() error {
	return c.guard.Validate(ErrOPCodeIsNotConstructed)
}

// Value returns the raw code string.
func (c OPCode) Value() string {
	return c.value
}

// Depth returns the number of segments in the code.
func (c OPCode) Depth() int {
	return c.depth
}

// String implements fmt.Stringer.
func (c OPCode) String() string {
	return c.value
}

// IsEqual compares two codes for exact equality.
// Both codes must be properly constructed for the comparison to succeed.
func (c OPCode) IsEqual(other OPCode) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return c.value == other.value, nil
}

// Prefix returns the leading prefix of the code covering the first depth
// segments under the default scheme.
func (c OPCode) Prefix(depth int) (Prefix, error) {
	if err := c.Validate(); err != nil {
		return Prefix{}, err
	}

	length, err := DefaultSegmentScheme.PrefixLength(depth)
	if err != nil {
		return Prefix{}, err
	}
	return NewPrefix(c.value[:length])
}

// Prefix is a segment-aligned leading slice of an OP code. It identifies the
// scope a courier is authorized over: the longer the prefix, the narrower
// the scope. A depth-1 prefix covers a whole city, a full-depth prefix
// covers a single point.
type Prefix struct { //nolint:recvcheck //using for validation
	value string
	depth int
	guard guard.ConstructorGuard
}

// NewPrefix creates a Prefix under the DefaultSegmentScheme. The value
// length must land exactly on a segment boundary.
func NewPrefix(value string) (Prefix, error) {
	return NewPrefixWithScheme(value, DefaultSegmentScheme)
}

// NewPrefixWithScheme creates a Prefix under an explicit segment scheme.
func NewPrefixWithScheme(value string, scheme SegmentScheme) (Prefix, error) {
	if err := scheme.Validate(); err != nil {
		return Prefix{}, err
	}
	if !isOPCodeCharset(value) || value == "" {
		return Prefix{}, errs.NewValueIsInvalidErrorWithCause("prefix",
			fmt.Errorf("%q must be non-empty and contain only characters A-Z and 0-9", value))
	}

	depth, err := scheme.DepthOfLength(len(value))
	if err != nil {
		return Prefix{}, err
	}

	return Prefix{
		value: value,
		depth: depth,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Prefix was properly constructed using a constructor.
func (p Prefix) Validate() error {
	return p.guard.Validate(ErrPrefixIsNotConstructed)
}

// Value returns the raw prefix string.
func (p Prefix) Value() string {
	return p.value
}

// Depth returns the number of segments the prefix covers.
func (p Prefix) Depth() int {
	return p.depth
}

// String implements fmt.Stringer.
func (p Prefix) String() string {
	return p.value
}

// IsEqual compares two prefixes for exact equality.
func (p Prefix) IsEqual(other Prefix) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p.value == other.value, nil
}

// Covers reports whether the given code sits inside the prefix scope,
// that is, whether the code value starts with the prefix value.
func (p Prefix) Covers(code OPCode) (bool, error) {
	if err := errors.Join(p.Validate(), code.Validate()); err != nil {
		return false, err
	}
	return strings.HasPrefix(code.Value(), p.value), nil
}

// CoversPrefix reports whether the other prefix scope is equal to or
// contained in this one.
func (p Prefix) CoversPrefix(other Prefix) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return strings.HasPrefix(other.value, p.value), nil
}

// IsDirectExtensionOf reports whether this prefix extends the parent prefix
// by exactly one segment. Used when a courier provisions scope for an
// immediate subordinate.
func (p Prefix) IsDirectExtensionOf(parent Prefix) (bool, error) {
	if err := errors.Join(p.Validate(), parent.Validate()); err != nil {
		return false, err
	}
	return p.depth == parent.depth+1 && strings.HasPrefix(p.value, parent.value), nil
}
