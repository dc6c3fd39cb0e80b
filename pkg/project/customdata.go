package project

import (
	"maps"
	"slices"

	errs "github.com/matzehuels/reclass/pkg/errors"
)

// CustomData is an opaque string-to-string bag attached to a project.
// Keys are saved as XML element names, so [CustomData.Set] only accepts keys
// that are valid element names (see [errs.ValidateElementName]).
type CustomData struct {
	m map[string]string
}

// NewCustomData creates an empty bag.
func NewCustomData() *CustomData {
	return &CustomData{m: make(map[string]string)}
}

// Set stores value under key, replacing any previous value.
// Returns an INVALID_KEY error if key is not a valid element name.
func (d *CustomData) Set(key, value string) error {
	if err := errs.ValidateElementName(key); err != nil {
		return err
	}
	d.m[key] = value
	return nil
}

// Get returns the value stored under key.
func (d *CustomData) Get(key string) (string, bool) {
	v, ok := d.m[key]
	return v, ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (d *CustomData) Delete(key string) { delete(d.m, key) }

// Keys returns all keys in sorted order.
func (d *CustomData) Keys() []string { return slices.Sorted(maps.Keys(d.m)) }

// Len returns the number of entries.
func (d *CustomData) Len() int { return len(d.m) }

func (d *CustomData) clear() { clear(d.m) }
