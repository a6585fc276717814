package states

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"California", "CA", true},
		{"california", "CA", true},
		{"CA", "CA", true},
		{"ca", "CA", true},
		{"North Carolina", "NC", true},
		{"district of columbia", "DC", true},
		{"DC", "DC", true},
		{" texas ", "TX", true},
		{"Puerto Rico", "", false},
		{"ZZ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.input)
		assert.Equal(t, tt.ok, ok)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestName(t *testing.T) {
	name, ok := Name("nc")
	assert.Equal(t, true, ok)
	assert.Equal(t, "north carolina", name)

	_, ok = Name("ZZ")
	assert.Equal(t, false, ok)
}
