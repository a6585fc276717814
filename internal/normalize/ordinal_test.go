package normalize

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{119, "119th"},
		{101, "101st"},
		{102, "102nd"},
		{103, "103rd"},
		{111, "111th"},
		{112, "112th"},
		{113, "113th"},
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{21, "21st"},
		{0, "0th"},
	}

	for _, tt := range tests {
		got := Ordinal(tt.n)
		if got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOrdinalString(t *testing.T) {
	assert.Equal(t, "119th", OrdinalString("119"))
	assert.Equal(t, "119th", OrdinalString(" 119 "))
	assert.Equal(t, "0th", OrdinalString("not-a-number"))
	assert.Equal(t, "0th", OrdinalString(""))
}
