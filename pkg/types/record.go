package types

// Record is the flat, serializable form of an Item. Author is set only for
// books and Issue only for magazines.
type Record struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Title     string `json:"title" yaml:"title"`
	Publisher string `json:"publisher" yaml:"publisher"`
	Year      int    `json:"year" yaml:"year"`
	Author    string `json:"author,omitempty" yaml:"author,omitempty"`
	Issue     int    `json:"issue,omitempty" yaml:"issue,omitempty"`
}

// RecordOf flattens item into a Record.
func RecordOf(item Item) Record {
	r := Record{
		Kind:      item.Kind(),
		Title:     item.Title(),
		Publisher: item.Publisher(),
		Year:      item.PublicationYear(),
	}
	switch v := item.(type) {
	case *Book:
		r.Author = v.Author()
	case *Magazine:
		r.Issue = v.IssueNumber()
	}
	return r
}

// Item builds the Item described by r through the validating constructors.
// The kind is matched as ParseKind does. Returns ErrUnknownKind if r.Kind is
// not a known kind.
func (r Record) Item() (Item, error) {
	kind, err := ParseKind(string(r.Kind))
	if err != nil {
		return nil, err
	}
	if kind == KindBook {
		return NewBook(r.Title, r.Publisher, r.Year, r.Author)
	}
	return NewMagazine(r.Title, r.Publisher, r.Year, r.Issue)
}
