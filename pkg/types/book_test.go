package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		publisher string
		year      int
		author    string
		wantField string // empty means success
	}{
		{name: "valid book", title: "Clean Code", publisher: "Pearson Education", year: 2008, author: "Robert Martin"},
		{name: "short title with long publisher", title: "Dunes", publisher: "Ace Books", year: 1965, author: "Frank Herbert"},
		{name: "title of exactly five runes", title: "Ébène", publisher: "Gallimard", year: 1998, author: "Ryszard Kapuscinski"},
		{name: "empty title", title: "", publisher: "Ace Books", year: 1965, author: "Frank Herbert", wantField: FieldTitle},
		{name: "whitespace title", title: "      ", publisher: "Ace Books", year: 1965, author: "Frank Herbert", wantField: FieldTitle},
		{name: "title too short", title: "Dune", publisher: "Ace Books", year: 1965, author: "Frank Herbert", wantField: FieldTitle},
		{name: "lowercase title", title: "clean code", publisher: "Pearson Education", year: 2008, author: "Robert Martin", wantField: FieldTitle},
		{name: "title starting with digit", title: "1984 Novel", publisher: "Secker Warburg", year: 1949, author: "George Orwell", wantField: FieldTitle},
		{name: "publisher too short", title: "Dunes", publisher: "Ace", year: 1965, author: "Frank Herbert", wantField: FieldPublisher},
		{name: "lowercase publisher", title: "Dunes", publisher: "ace books", year: 1965, author: "Frank Herbert", wantField: FieldPublisher},
		{name: "empty publisher", title: "Dunes", publisher: "", year: 1965, author: "Frank Herbert", wantField: FieldPublisher},
		{name: "year below range", title: "Dunes", publisher: "Ace Books", year: 999, author: "Frank Herbert", wantField: FieldPublicationYear},
		{name: "year above range", title: "Dunes", publisher: "Ace Books", year: 10000, author: "Frank Herbert", wantField: FieldPublicationYear},
		{name: "empty author", title: "Dunes", publisher: "Ace Books", year: 1965, author: "", wantField: FieldAuthor},
		{name: "author too short", title: "Dunes", publisher: "Ace Books", year: 1965, author: "Bo", wantField: FieldAuthor},
		{name: "lowercase author", title: "Dunes", publisher: "Ace Books", year: 1965, author: "frank herbert", wantField: FieldAuthor},
		{name: "title checked before publisher", title: "x", publisher: "y", year: 0, author: "", wantField: FieldTitle},
		{name: "publisher checked before year", title: "Dunes", publisher: "y", year: 0, author: "", wantField: FieldPublisher},
		{name: "year checked before author", title: "Dunes", publisher: "Ace Books", year: 0, author: "", wantField: FieldPublicationYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBook(tt.title, tt.publisher, tt.year, tt.author)

			if tt.wantField == "" {
				require.NoError(t, err)
				require.NotNil(t, b)
				assert.Equal(t, KindBook, b.Kind())
				assert.Equal(t, tt.title, b.Title())
				assert.Equal(t, tt.publisher, b.Publisher())
				assert.Equal(t, tt.year, b.PublicationYear())
				assert.Equal(t, tt.author, b.Author())
				return
			}

			assert.Nil(t, b, "no book should be returned on error")
			assert.ErrorIs(t, err, ErrInvalidItem)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestDuneScenario(t *testing.T) {
	// "Dune" alone is below the title minimum; the publisher rule is what
	// separates these two.
	_, err := NewBook("Dune Messiah", "Ace Books", 1965, "Frank Herbert")
	assert.NoError(t, err)

	_, err = NewBook("Dune Messiah", "Ace", 1965, "Frank Herbert")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldPublisher, verr.Field)
	assert.Contains(t, verr.Message, "at least 6 characters")
}

func TestBookSettersKeepValueOnError(t *testing.T) {
	b, err := NewBook("Clean Code", "Pearson Education", 2008, "Robert Martin")
	require.NoError(t, err)

	assert.Error(t, b.SetTitle("bad"))
	assert.Error(t, b.SetPublisher(""))
	assert.Error(t, b.SetPublicationYear(12))
	assert.Error(t, b.SetAuthor("bob"))

	assert.Equal(t, "Clean Code", b.Title())
	assert.Equal(t, "Pearson Education", b.Publisher())
	assert.Equal(t, 2008, b.PublicationYear())
	assert.Equal(t, "Robert Martin", b.Author())

	require.NoError(t, b.SetTitle("Clean Architecture"))
	require.NoError(t, b.SetAuthor("Robert C. Martin"))
	assert.Equal(t, "Clean Architecture", b.Title())
	assert.Equal(t, "Robert C. Martin", b.Author())
}

func TestBookDescribe(t *testing.T) {
	b, err := NewBook("Clean Code", "Pearson Education", 2008, "Robert Martin")
	require.NoError(t, err)

	want := "========== BOOK ==========\n" +
		"Title: Clean Code\n" +
		"Publisher: Pearson Education\n" +
		"Publication Year: 2008\n" +
		"Author: Robert Martin\n" +
		"==========================\n"
	assert.Equal(t, want, b.Describe())
}

func TestBookClone(t *testing.T) {
	b, err := NewBook("Clean Code", "Pearson Education", 2008, "Robert Martin")
	require.NoError(t, err)

	c, ok := b.Clone().(*Book)
	require.True(t, ok)
	require.NoError(t, c.SetAuthor("Someone Else"))

	assert.Equal(t, "Robert Martin", b.Author(), "clone must not alias the original")
	assert.Equal(t, "Someone Else", c.Author())
}
