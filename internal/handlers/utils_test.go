package handlers

import "testing"

func TestRedactEmail(t *testing.T) {
	testCases := []struct {
		name     string
		have     string
		expected string
	}{
		{
			name:     "ShouldRedactMiddleOfLocalPart",
			have:     "steve@example.com",
			expected: "s***e@example.com",
		},
		{
			name:     "ShouldMaskShortLocalPart",
			have:     "ab@example.com",
			expected: "**@example.com",
		},
		{
			name:     "ShouldReturnEmptyForInvalidEmail",
			have:     "not-an-email",
			expected: "",
		},
		{
			name:     "ShouldReturnEmptyForDoubleAt",
			have:     "a@b@example.com",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := RedactEmail(tc.have); actual != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, actual)
			}
		})
	}
}
