package library

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// recordFile is the YAML layout of an item file.
type recordFile struct {
	Items []types.Record `yaml:"items"`
}

// LoadRecords decodes an item file of the form
//
//	items:
//	  - kind: book
//	    title: Clean Code
//	    publisher: Pearson Education
//	    year: 2008
//	    author: Robert Martin
//
// Unknown keys are rejected. An empty document yields no records.
func LoadRecords(r io.Reader) ([]types.Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f recordFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return f.Items, nil
}

// AddRecords builds and adds each record in order, continuing past failures.
// It returns the number of items added and, if any record was rejected, an
// error joining one "record N: ..." error per rejection (N is 1-based).
func (c *Catalog) AddRecords(records []types.Record) (int, error) {
	var (
		added int
		errs  []error
	)
	for i, rec := range records {
		item, err := rec.Item()
		if err == nil {
			_, err = c.AddItem(item)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}
