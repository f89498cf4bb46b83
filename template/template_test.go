package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []string
		expected string
	}{
		{"NoPlaceholders", "Hello, world!", []string{}, "Hello, world!"},
		{"SinglePlaceholder", "Hello, {}!", []string{"world"}, "Hello, world!"},
		{"MultiplePlaceholders", "Hello, {}, you are {} years old.", []string{"John", "30"}, "Hello, John, you are 30 years old."},
		{"LeadingAndTrailing", "{}-middle-{}", []string{"a", "b"}, "a-middle-b"},
		{"Adjacent", "{}{}", []string{"a", "b"}, "ab"},
		{"OnlyPlaceholder", "{}", []string{"x"}, "x"},
		{"BranchMarkerUntouched", "{b} - {}", []string{"fix"}, "{b} - fix"},
		{"FewerValues", "{} and {}", []string{"one"}, "one and "},
		{"NoValues", "{} and {}", nil, " and "},
		{"ExtraValuesIgnored", "{}!", []string{"a", "b"}, "a!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Interpolate(tc.template, tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestInterpolateMatchesSegmentConcatenation(t *testing.T) {
	templates := []string{"{}", "a{}b{}c", "[{}] - {}", "feature-{}/utils-{}", "{}{}{}", "x"}
	for _, tpl := range templates {
		segments := strings.Split(tpl, PositionalMarker)
		values := make([]string, len(segments)-1)
		for i := range values {
			values[i] = strings.Repeat("v", i+1)
		}
		require.NoError(t, ValidatePlaceholderCount(tpl, len(values)))

		var expected string
		for i, segment := range segments {
			expected += segment
			if i < len(values) {
				expected += values[i]
			}
		}
		actual, err := Interpolate(tpl, values)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, tpl)
	}
}

func TestValidatePlaceholderCount(t *testing.T) {
	tests := []struct {
		name     string
		template string
		provided int
		expected int
		valid    bool
	}{
		{"NoPlaceholdersNoValues", "Hello, world!", 0, 0, true},
		{"NoPlaceholdersSomeValues", "Hello, world!", 2, 0, false},
		{"NotEnoughValues", "Hello, {}!", 0, 1, false},
		{"TooManyValues", "Hello, {}!", 2, 1, false},
		{"Exact", "Hello, {}, you are {} years old.", 2, 2, true},
		{"BranchMarkerNotCounted", "{b}: {}", 1, 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePlaceholderCount(tc.template, tc.provided)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			var mismatch *CountMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tc.expected, mismatch.Expected)
			assert.Equal(t, tc.provided, mismatch.Received)
			assert.Equal(t, PositionalMarker, mismatch.Marker)
		})
	}
}

func TestCountMismatchErrorMessage(t *testing.T) {
	err := ValidatePlaceholderCount("[{}] - {}", 1)
	assert.Equal(t,
		"number of places to interpolate {} doesn't match number of args provided: expected 2, received 1",
		err.Error())
}

func TestInterpolateDerived(t *testing.T) {
	actual, err := InterpolateDerived("[{b}] - fix gpu issues", "1234")
	require.NoError(t, err)
	assert.Equal(t, "[1234] - fix gpu issues", actual)

	t.Run("MissingMarker", func(t *testing.T) {
		actual, err := InterpolateDerived("[123] - fix gpu issues", "1234")
		assert.True(t, errors.Is(err, ErrNoInterpolationMarker))
		assert.Empty(t, actual)
	})

	t.Run("TwoMarkers", func(t *testing.T) {
		actual, err := InterpolateDerived("{b}/{b}", "1234")
		var mismatch *CountMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 2, mismatch.Expected)
		assert.Equal(t, 1, mismatch.Received)
		assert.Empty(t, actual)
	})
}

func TestInterpolateAutocomplete(t *testing.T) {
	actual, err := InterpolateAutocomplete("[] [] - fix", []string{"JIRA", "ui"})
	require.NoError(t, err)
	assert.Equal(t, "JIRA ui - fix", actual)

	actual, err = InterpolateAutocomplete("no markers", []string{})
	require.NoError(t, err)
	assert.Equal(t, "no markers", actual)

	_, err = InterpolateAutocomplete("[] - fix", []string{})
	var mismatch *CountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, AutocompleteMarker, mismatch.Marker)
}

func TestValidateTemplate(t *testing.T) {
	assert.NoError(t, ValidateTemplate("feature-{}/utils-{}"))
	assert.NoError(t, ValidateTemplate("{b} - done"))
	assert.NoError(t, ValidateTemplate("[] - wip"))
	for _, tpl := range []string{"feature/static", "feature-{x}", "{ foo }", "[x]"} {
		err := ValidateTemplate(tpl)
		assert.True(t, errors.Is(err, ErrNoInterpolationMarker), tpl)
	}
}

func TestCountPlaceholders(t *testing.T) {
	assert.Equal(t, 0, CountPlaceholders("", PositionalMarker))
	assert.Equal(t, 0, CountPlaceholders("plain", PositionalMarker))
	assert.Equal(t, 3, CountPlaceholders("{}{}{}", PositionalMarker))
	assert.Equal(t, 1, CountPlaceholders("{b}-{}", BranchNumberMarker))
}
