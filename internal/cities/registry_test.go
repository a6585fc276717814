package cities

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLookup(t *testing.T) {
	m, ok := Lookup("seattle")
	assert.Equal(t, true, ok)
	assert.Equal(t, "Seattle", m.Name)
	assert.Equal(t, true, m.Verified)

	// case and spacing forgiveness
	m, ok = Lookup("Long Beach")
	assert.Equal(t, true, ok)
	assert.Equal(t, "longbeach", m.ClientID)

	_, ok = Lookup("gotham")
	assert.Equal(t, false, ok)
}

func TestLookup_UnverifiedStillKnown(t *testing.T) {
	m, ok := Lookup("gainesville")
	assert.Equal(t, true, ok)
	assert.Equal(t, false, m.Verified)
}

func TestVerified_SortedAndFiltered(t *testing.T) {
	list := Verified()
	if len(list) == 0 {
		t.Fatal("expected verified municipalities")
	}
	for i, m := range list {
		if !m.Verified {
			t.Errorf("unverified municipality %q in Verified()", m.Slug)
		}
		if i > 0 && list[i-1].Name > m.Name {
			t.Errorf("list not sorted at %d: %q > %q", i, list[i-1].Name, m.Name)
		}
	}
}

func TestVerifiedSlugs(t *testing.T) {
	slugs := VerifiedSlugs()
	assert.Equal(t, len(Verified()), len(slugs))
}
