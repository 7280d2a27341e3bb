package types

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field limits. Lengths are counted in runes.
const (
	MinTitleLen     = 5
	MinPublisherLen = 6
	MinAuthorLen    = 5

	MinPublicationYear = 1000
	MaxPublicationYear = 9999
)

// Field names carried by ValidationError.
const (
	FieldTitle           = "title"
	FieldPublisher       = "publisher"
	FieldPublicationYear = "publication_year"
	FieldAuthor          = "author"
	FieldIssueNumber     = "issue_number"
)

// fieldLabels maps field names to the label used in error messages.
var fieldLabels = map[string]string{
	FieldTitle:           "title",
	FieldPublisher:       "publisher",
	FieldPublicationYear: "publication year",
	FieldAuthor:          "author",
	FieldIssueNumber:     "issue number",
}

// ValidateTitle checks a title: non-blank, at least MinTitleLen characters,
// starting with an uppercase letter.
func ValidateTitle(s string) error {
	return validateName(FieldTitle, s, MinTitleLen)
}

// ValidatePublisher checks a publisher name: non-blank, at least
// MinPublisherLen characters, starting with an uppercase letter.
func ValidatePublisher(s string) error {
	return validateName(FieldPublisher, s, MinPublisherLen)
}

// ValidateAuthor checks an author name: non-blank, at least MinAuthorLen
// characters, starting with an uppercase letter.
func ValidateAuthor(s string) error {
	return validateName(FieldAuthor, s, MinAuthorLen)
}

// ValidatePublicationYear checks that year is a four-digit year.
func ValidatePublicationYear(year int) error {
	if year < MinPublicationYear || year > MaxPublicationYear {
		return invalid(FieldPublicationYear, "publication year must be a four-digit year between %d and %d, got %d",
			MinPublicationYear, MaxPublicationYear, year)
	}
	return nil
}

// ValidateIssueNumber checks that n is strictly positive.
func ValidateIssueNumber(n int) error {
	if n <= 0 {
		return invalid(FieldIssueNumber, "issue number must be a positive integer, got %d", n)
	}
	return nil
}

// validateName applies the shared text rule. The length check runs on the
// value as given; only the blank check trims.
func validateName(field, s string, minLen int) error {
	label := fieldLabels[field]
	if strings.TrimSpace(s) == "" {
		return invalid(field, "%s cannot be empty", label)
	}
	if utf8.RuneCountInString(s) < minLen {
		return invalid(field, "%s must be at least %d characters long", label, minLen)
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return invalid(field, "%s must begin with a capital letter", label)
	}
	return nil
}
