// Package types defines the library item model, its field validation rules,
// the error values returned by item construction and the catalog, and the
// console configuration for shelf.
//
// Items are a closed set: *Book and *Magazine are the only implementations
// of Item. Every field is validated on assignment, so a constructed item is
// always valid.
package types
