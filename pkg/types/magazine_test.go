package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name      string
		issue     int
		year      int
		wantField string
	}{
		{name: "issue one", issue: 1, year: 2024},
		{name: "large issue", issue: 512, year: 2024},
		{name: "lower year boundary", issue: 3, year: 1000},
		{name: "upper year boundary", issue: 3, year: 9999},
		{name: "issue zero", issue: 0, year: 2024, wantField: FieldIssueNumber},
		{name: "negative issue", issue: -4, year: 2024, wantField: FieldIssueNumber},
		{name: "year 999", issue: 3, year: 999, wantField: FieldPublicationYear},
		{name: "year 10000", issue: 3, year: 10000, wantField: FieldPublicationYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMagazine("National Geographic", "National Geographic Society", tt.year, tt.issue)

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, KindMagazine, m.Kind())
				assert.Equal(t, tt.issue, m.IssueNumber())
				assert.Equal(t, tt.year, m.PublicationYear())
				return
			}

			assert.Nil(t, m)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestMagazineSetIssueNumber(t *testing.T) {
	m, err := NewMagazine("Wired Monthly", "Conde Nast", 2020, 7)
	require.NoError(t, err)

	assert.ErrorIs(t, m.SetIssueNumber(0), ErrInvalidItem)
	assert.Equal(t, 7, m.IssueNumber())

	require.NoError(t, m.SetIssueNumber(8))
	assert.Equal(t, 8, m.IssueNumber())
}

func TestMagazineDescribe(t *testing.T) {
	m, err := NewMagazine("Clean Code", "Pearson Education", 2008, 3)
	require.NoError(t, err)

	out := m.Describe()
	assert.Contains(t, out, "MAGAZINE")
	assert.Contains(t, out, "Title: Clean Code\n")
	assert.Contains(t, out, "Publisher: Pearson Education\n")
	assert.Contains(t, out, "Publication Year: 2008\n")
	assert.Contains(t, out, "Issue Number: 3\n")
	assert.NotContains(t, out, "Author")
}

func TestDescribeDispatchesThroughItem(t *testing.T) {
	b, err := NewBook("Clean Code", "Pearson Education", 2008, "Robert Martin")
	require.NoError(t, err)
	m, err := NewMagazine("Clean Code", "Pearson Education", 2008, 3)
	require.NoError(t, err)

	items := []Item{b, m}
	assert.Contains(t, items[0].Describe(), "Author: Robert Martin")
	assert.Contains(t, items[1].Describe(), "Issue Number: 3")
}

func TestSameIdentity(t *testing.T) {
	b, err := NewBook("Clean Code", "Pearson Education", 2008, "Robert Martin")
	require.NoError(t, err)
	m, err := NewMagazine("Clean Code", "Pearson Education", 2008, 3)
	require.NoError(t, err)
	other, err := NewMagazine("Clean Code", "Pearson Education", 2009, 3)
	require.NoError(t, err)
	lower, err := NewBook("Clean code", "Pearson Education", 2008, "Robert Martin")
	require.NoError(t, err)

	assert.True(t, SameIdentity(b, m), "kind and variant fields are not part of identity")
	assert.False(t, SameIdentity(m, other))
	assert.False(t, SameIdentity(b, lower), "identity is case-sensitive")
}

func TestIsNil(t *testing.T) {
	var book *Book
	var mag *Magazine
	m, err := NewMagazine("Wired Monthly", "Conde Nast", 2020, 7)
	require.NoError(t, err)

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(book))
	assert.True(t, IsNil(mag))
	assert.False(t, IsNil(m))
}
