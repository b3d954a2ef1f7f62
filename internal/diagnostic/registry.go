package diagnostic

import (
	"fmt"
	"io"
	"slices"
)

// Registry is the run-wide, deduplicated set of input field names that
// had no mapping rule. It is owned by the driver and fed from per-record
// Diagnostics, so no package-level state is involved.
type Registry struct {
	seen map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Add records a field name. It reports whether the name was new.
func (r *Registry) Add(field string) bool {
	if _, ok := r.seen[field]; ok {
		return false
	}

	r.seen[field] = struct{}{}

	return true
}

// Collect adds the field of every unsupported-field diagnostic in d.
func (r *Registry) Collect(d Diagnostics) {
	for _, diag := range d.WithCode(CodeUnsupportedField) {
		r.Add(diag.Field)
	}
}

// Has returns true if the field name has been recorded.
func (r *Registry) Has(field string) bool {
	_, ok := r.seen[field]
	return ok
}

// Len returns the number of distinct field names recorded.
func (r *Registry) Len() int {
	return len(r.seen)
}

// Names returns the recorded field names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.seen))
	for name := range r.seen {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Report writes the "Unsupported fields:" listing to w. Nothing is
// written when the registry is empty.
func (r *Registry) Report(w io.Writer) error {
	if r.Len() == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "Unsupported fields:"); err != nil {
		return err
	}

	for _, name := range r.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}

	return nil
}
