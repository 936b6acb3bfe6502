package anyx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	testCases := []struct {
		name     string
		given    any
		expected string
	}{
		{"nil", nil, "None"},
		{"string", "mean", "mean"},
		{"int64", int64(-1), "-1"},
		{"uint64", uint64(7), "7"},
		{"float64", 0.5, "0.5"},
		{"bool", true, "true"},
		{"slice", []int{1, 2}, "[1 2]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, String(tc.given))
		})
	}
}
