package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePathSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name unchanged",
			input:    "Album Title",
			expected: "Album Title",
		},
		{
			name:     "slash becomes hyphen",
			input:    "AC/DC",
			expected: "AC-DC",
		},
		{
			name:     "backslash becomes hyphen",
			input:    `Back\Slash`,
			expected: "Back-Slash",
		},
		{
			name:     "adjacent slashes collapse",
			input:    "a//b\\/c",
			expected: "a-b-c",
		},
		{
			name:     "trailing dot becomes underscore",
			input:    "Vol. 2.",
			expected: "Vol. 2_",
		},
		{
			name:     "reserved characters become underscores",
			input:    "what? really*: yes|no <here>",
			expected: "what_ really_ yes_no _here_",
		},
		{
			name:     "adjacent reserved characters collapse",
			input:    "why??!",
			expected: "why_!",
		},
		{
			name:     "control characters become underscores",
			input:    "tab\there",
			expected: "tab_here",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizePathSegment(tt.input))
		})
	}
}

func TestSanitizePathSegmentIdempotent(t *testing.T) {
	inputs := []string{
		"AC/DC",
		"a//b\\\\c??d",
		"trailing.",
		"trailing..",
		"mixed: <*|?> \x01\x02 name.",
		"already clean",
	}
	for _, in := range inputs {
		once := SanitizePathSegment(in)
		assert.Equal(t, once, SanitizePathSegment(once), "input %q", in)
	}
}

func TestSanitizePathSegmentNeverEmitsReserved(t *testing.T) {
	inputs := []string{
		"a/b\\c?d*e:f|g<h>i",
		"////",
		"\\?\\",
	}
	for _, in := range inputs {
		out := SanitizePathSegment(in)
		assert.False(t, strings.ContainsAny(out, `/\?*:|<>`), "output %q for input %q", out, in)
	}
}
