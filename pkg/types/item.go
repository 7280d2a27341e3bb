package types

import (
	"fmt"
	"strings"
)

// Item is a catalog entry. The only implementations are *Book and *Magazine.
type Item interface {
	Kind() Kind
	Title() string
	Publisher() string
	PublicationYear() int

	// Describe renders a multi-line summary framed by a kind header.
	Describe() string

	// Clone returns an independent copy of the item.
	Clone() Item

	sealed()
}

// itemFields holds the fields shared by every kind. Setters validate before
// assigning and leave the field untouched on error.
type itemFields struct {
	title           string
	publisher       string
	publicationYear int
}

// newItemFields validates in order title, publisher, year.
func newItemFields(title, publisher string, year int) (itemFields, error) {
	var f itemFields
	if err := f.SetTitle(title); err != nil {
		return itemFields{}, err
	}
	if err := f.SetPublisher(publisher); err != nil {
		return itemFields{}, err
	}
	if err := f.SetPublicationYear(year); err != nil {
		return itemFields{}, err
	}
	return f, nil
}

func (f *itemFields) Title() string        { return f.title }
func (f *itemFields) Publisher() string    { return f.publisher }
func (f *itemFields) PublicationYear() int { return f.publicationYear }

// SetTitle replaces the title. Returns a *ValidationError if it is invalid.
func (f *itemFields) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	f.title = title
	return nil
}

// SetPublisher replaces the publisher. Returns a *ValidationError if it is
// invalid.
func (f *itemFields) SetPublisher(publisher string) error {
	if err := ValidatePublisher(publisher); err != nil {
		return err
	}
	f.publisher = publisher
	return nil
}

// SetPublicationYear replaces the year. Returns a *ValidationError if it is
// outside [MinPublicationYear, MaxPublicationYear].
func (f *itemFields) SetPublicationYear(year int) error {
	if err := ValidatePublicationYear(year); err != nil {
		return err
	}
	f.publicationYear = year
	return nil
}

// describeBase writes the shared field lines.
func (f *itemFields) describeBase(b *strings.Builder) {
	fmt.Fprintf(b, "Title: %s\n", f.title)
	fmt.Fprintf(b, "Publisher: %s\n", f.publisher)
	fmt.Fprintf(b, "Publication Year: %d\n", f.publicationYear)
}

// frame wraps body in a header naming the kind and a matching footer.
func frame(k Kind, body func(b *strings.Builder)) string {
	header := fmt.Sprintf("========== %s ==========", strings.ToUpper(string(k)))
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	body(&b)
	b.WriteString(strings.Repeat("=", len(header)))
	b.WriteByte('\n')
	return b.String()
}

// SameIdentity reports whether a and b share title, publisher and
// publication year. Kind and kind-specific fields are ignored.
func SameIdentity(a, b Item) bool {
	return a.Title() == b.Title() &&
		a.Publisher() == b.Publisher() &&
		a.PublicationYear() == b.PublicationYear()
}

// IsNil reports whether item is nil or a typed nil pointer.
func IsNil(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Book:
		return v == nil
	case *Magazine:
		return v == nil
	}
	return false
}
