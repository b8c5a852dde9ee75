package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCounterValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
	}{
		{name: "empty restarts at zero", raw: "", expected: 0},
		{name: "numeric value", raw: "7", expected: 7},
		{name: "large value", raw: "99999", expected: 99999},
		{name: "corrupt value restarts at zero", raw: "abc", expected: 0},
		{name: "negative value restarts at zero", raw: "-3", expected: 0},
		{name: "overflow restarts at zero", raw: "99999999999999999999", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCounterValue(tt.raw))
		})
	}
}
