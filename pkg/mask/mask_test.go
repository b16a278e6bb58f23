package mask_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/mask"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "typical address",
			input:    "john@example.com",
			expected: "j***@example.com",
		},
		{
			name:     "single character local part",
			input:    "j@example.com",
			expected: "j***@example.com",
		},
		{
			name:     "alice in wonderland",
			input:    "alice@wonderland.io",
			expected: "a***@wonderland.io",
		},
		{
			name:     "domain case preserved",
			input:    "John@ExAmPlE.cOm",
			expected: "J***@ExAmPlE.cOm",
		},
		{
			name:     "plus sign local part",
			input:    "+tag@example.com",
			expected: "+***@example.com",
		},
		{
			name:     "subdomain domain",
			input:    "emma@mail.example.co.uk",
			expected: "e***@mail.example.co.uk",
		},
		{
			name:     "unicode local part keeps first rune",
			input:    "émile@example.com",
			expected: "é***@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := mask.Email(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEmailInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "no at sign",
			input: "not-an-email",
		},
		{
			name:  "two at signs",
			input: "a@b@example.com",
		},
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "empty local part",
			input: "@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mask.Email(tt.input)
			assert.ErrorIs(t, err, mask.ErrInvalidFormat)
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ten digit number",
			input:    "5551234567",
			expected: "******4567",
		},
		{
			name:     "long international number",
			input:    "+4930123456789",
			expected: "**********6789",
		},
		{
			name:     "formatted number masks formatting too",
			input:    "(555) 123-0101",
			expected: "**********0101",
		},
		{
			name:     "exactly four characters unchanged",
			input:    "4567",
			expected: "4567",
		},
		{
			name:     "five characters",
			input:    "51234",
			expected: "*1234",
		},
		{
			name:     "fewer than four characters unchanged",
			input:    "123",
			expected: "123",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "non-digit content",
			input:    "call me maybe",
			expected: "*********aybe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mask.Phone(tt.input))
		})
	}
}

// Masking never changes the character count, and the last four characters
// always survive.
func TestPhoneLengthPreserved(t *testing.T) {
	inputs := []string{
		"5551234567",
		"+1 (555) 123-4567",
		"12345",
		"1234",
		"12",
		"",
		"телефон12345",
	}

	for _, input := range inputs {
		result := mask.Phone(input)
		assert.Equal(t, utf8.RuneCountInString(input), utf8.RuneCountInString(result))
		if n := utf8.RuneCountInString(input); n >= 4 {
			runes := []rune(input)
			assert.True(t, strings.HasSuffix(result, string(runes[n-4:])))
		} else {
			assert.Equal(t, input, result)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		visibleChars int
		expected     string
	}{
		{
			name:         "keeps head and tail",
			input:        "supersecretvalue",
			visibleChars: 2,
			expected:     "su************ue",
		},
		{
			name:         "short string fully masked",
			input:        "abcd",
			visibleChars: 2,
			expected:     "****",
		},
		{
			name:         "negative visible falls back to one",
			input:        "secret",
			visibleChars: -1,
			expected:     "s****t",
		},
		{
			name:         "empty string",
			input:        "",
			visibleChars: 2,
			expected:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mask.String(tt.input, tt.visibleChars))
		})
	}
}

func TestCreditCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain digits",
			input:    "4111111111111111",
			expected: "************1111",
		},
		{
			name:     "hyphen formatted",
			input:    "4111-1111-1111-1111",
			expected: "************1111",
		},
		{
			name:     "space formatted",
			input:    "4111 1111 1111 1111",
			expected: "************1111",
		},
		{
			name:     "too few digits fully masked",
			input:    "12",
			expected: "**",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mask.CreditCard(tt.input))
		})
	}
}
