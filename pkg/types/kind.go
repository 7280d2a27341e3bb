package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind tags the concrete variant of an Item.
type Kind string

// Item kinds.
const (
	KindBook     Kind = "book"
	KindMagazine Kind = "magazine"
)

// ParseKind returns the Kind named by s, ignoring case and surrounding space.
// Returns ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindBook || k == KindMagazine
}

// Label returns the display name of the kind, e.g. "Book".
func (k Kind) Label() string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(string(k))
}

func (k Kind) String() string {
	return string(k)
}
