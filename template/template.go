package template

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// PositionalMarker is filled, in order, by the values given on the command line.
	PositionalMarker = "{}"

	// BranchNumberMarker is filled by the number found in the current branch name.
	BranchNumberMarker = "{b}"

	// AutocompleteMarker is filled, in order, by the stored autocomplete values.
	AutocompleteMarker = "[]"
)

var ErrNoInterpolationMarker = errors.New("no interpolation marker")

// CountMismatchError is returned when the number of values doesn't match
// the number of places to interpolate.
type CountMismatchError struct {
	Marker   string
	Expected int
	Received int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("number of places to interpolate %s doesn't match number of args provided: expected %d, received %d",
		e.Marker, e.Expected, e.Received)
}

var _anyMarkerRegex = regexp.MustCompile(`\{\}|\{b\}|\[\]`)

// ValidateTemplate checks that a template about to be stored has at least one place to interpolate.
func ValidateTemplate(tpl string) error {
	if !_anyMarkerRegex.MatchString(tpl) {
		return fmt.Errorf("%w: template %q has no %s, %s or %s in it",
			ErrNoInterpolationMarker, tpl, PositionalMarker, BranchNumberMarker, AutocompleteMarker)
	}
	return nil
}

// CountPlaceholders returns how many times marker occurs in tpl.
func CountPlaceholders(tpl string, marker string) int {
	return len(strings.Split(tpl, marker)) - 1
}

// ValidatePlaceholderCount checks tpl has exactly provided positional markers.
func ValidatePlaceholderCount(tpl string, provided int) error {
	return validateCount(tpl, PositionalMarker, provided)
}

// Interpolate merges values into the positional markers of tpl.
func Interpolate(tpl string, values []string) (string, error) {
	return merge(tpl, PositionalMarker, values), nil
}

// ValidateDerived checks s has exactly one branch number marker.
func ValidateDerived(s string) error {
	if CountPlaceholders(s, BranchNumberMarker) == 0 {
		return fmt.Errorf("%w: %q has no %s to put the branch number in",
			ErrNoInterpolationMarker, s, BranchNumberMarker)
	}
	return validateCount(s, BranchNumberMarker, 1)
}

// InterpolateDerived puts the branch number token into the already interpolated string s.
func InterpolateDerived(s string, token string) (string, error) {
	err := ValidateDerived(s)
	if err != nil {
		return "", err
	}
	return merge(s, BranchNumberMarker, []string{token}), nil
}

// InterpolateAutocomplete fills the autocomplete markers of s with the stored values.
func InterpolateAutocomplete(s string, values []string) (string, error) {
	err := validateCount(s, AutocompleteMarker, len(values))
	if err != nil {
		return "", err
	}
	return merge(s, AutocompleteMarker, values), nil
}

func validateCount(s string, marker string, provided int) error {
	places := CountPlaceholders(s, marker)
	if places != provided {
		return &CountMismatchError{
			Marker:   marker,
			Expected: places,
			Received: provided,
		}
	}
	return nil
}

// merge joins segment_0, value_0, segment_1, value_1, ..., segment_n.
// Segments past the end of values get no fill.
func merge(s string, marker string, values []string) string {
	var b strings.Builder
	segments := strings.Split(s, marker)
	for i, segment := range segments {
		b.WriteString(segment)
		if i < len(segments)-1 && i < len(values) {
			b.WriteString(values[i])
		}
	}
	return b.String()
}
