package entity

import (
	"fmt"
	"strings"
)

// PairSeparator joins base and target in the textual form of a favorite pair
const PairSeparator = "-"

// FavoritePair is a saved (base, target) shortcut
type FavoritePair struct {
	Base   string `json:"base"`
	Target string `json:"target"`
}

// String returns the BASE-TARGET form
func (p FavoritePair) String() string {
	return p.Base + PairSeparator + p.Target
}

// ParseFavoritePair splits a BASE-TARGET string. The separator must appear
// exactly once and both halves must be syntactically currency codes (case is
// normalized). Halves are not checked against the live currency catalog.
func ParseFavoritePair(s string) (FavoritePair, error) {
	if strings.Count(s, PairSeparator) != 1 {
		return FavoritePair{}, fmt.Errorf("%w: %q must contain exactly one %q", ErrMalformedPair, s, PairSeparator)
	}

	base, target, _ := strings.Cut(s, PairSeparator)
	base, target = NormalizeCode(base), NormalizeCode(target)
	if base == "" || target == "" {
		return FavoritePair{}, fmt.Errorf("%w: %q has an empty half", ErrMalformedPair, s)
	}

	if !IsCurrencyCode(base) || !IsCurrencyCode(target) {
		return FavoritePair{}, fmt.Errorf("%w: %q is not BASE-TARGET currency codes", ErrMalformedPair, s)
	}

	return FavoritePair{Base: base, Target: target}, nil
}
