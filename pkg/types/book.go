package types

import (
	"fmt"
	"strings"
)

// Book is an Item with an author.
type Book struct {
	itemFields
	author string
}

// NewBook validates title, publisher, year and author in that order and
// returns the first failure. No Book is returned on error.
func NewBook(title, publisher string, year int, author string) (*Book, error) {
	f, err := newItemFields(title, publisher, year)
	if err != nil {
		return nil, err
	}
	b := &Book{itemFields: f}
	if err := b.SetAuthor(author); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) Kind() Kind { return KindBook }

func (b *Book) Author() string { return b.author }

// SetAuthor replaces the author. Returns a *ValidationError if it is invalid.
func (b *Book) SetAuthor(author string) error {
	if err := ValidateAuthor(author); err != nil {
		return err
	}
	b.author = author
	return nil
}

func (b *Book) Describe() string {
	return frame(KindBook, func(sb *strings.Builder) {
		b.describeBase(sb)
		fmt.Fprintf(sb, "Author: %s\n", b.author)
	})
}

func (b *Book) Clone() Item {
	c := *b
	return &c
}

func (*Book) sealed() {}
