package symptom

import (
	"strings"
	"testing"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "headache",
			message:  "I have a pounding headache since this morning",
			expected: "pain relievers like paracetamol",
		},
		{
			name:     "stomach",
			message:  "My stomach hurts",
			expected: "indigestion, food poisoning, or motion sickness",
		},
		{
			name:     "nausea",
			message:  "Feeling NAUSEA after lunch",
			expected: "indigestion, food poisoning, or motion sickness",
		},
		{
			name:     "unknown symptoms",
			message:  "My knee clicks when I walk",
			expected: "difficult to make a specific assessment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := Respond(tt.message)

			if !strings.Contains(response, tt.expected) {
				t.Errorf("expected response containing %q, got %q", tt.expected, response)
			}
		})
	}
}
