package types

import (
	"fmt"
	"strings"
)

// Magazine is an Item with an issue number.
type Magazine struct {
	itemFields
	issueNumber int
}

// NewMagazine validates title, publisher, year and issue number in that
// order and returns the first failure. No Magazine is returned on error.
func NewMagazine(title, publisher string, year, issueNumber int) (*Magazine, error) {
	f, err := newItemFields(title, publisher, year)
	if err != nil {
		return nil, err
	}
	m := &Magazine{itemFields: f}
	if err := m.SetIssueNumber(issueNumber); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Magazine) Kind() Kind { return KindMagazine }

func (m *Magazine) IssueNumber() int { return m.issueNumber }

// SetIssueNumber replaces the issue number. Returns a *ValidationError
// unless n > 0.
func (m *Magazine) SetIssueNumber(n int) error {
	if err := ValidateIssueNumber(n); err != nil {
		return err
	}
	m.issueNumber = n
	return nil
}

func (m *Magazine) Describe() string {
	return frame(KindMagazine, func(sb *strings.Builder) {
		m.describeBase(sb)
		fmt.Fprintf(sb, "Issue Number: %d\n", m.issueNumber)
	})
}

func (m *Magazine) Clone() Item {
	c := *m
	return &c
}

func (*Magazine) sealed() {}
