package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"ldif2vcard/internal/diagnostic"
	"ldif2vcard/internal/ldif"
	"ldif2vcard/internal/vcard"
)

// Stats counts what a Converter has done so far.
type Stats struct {
	Records int
	Cards   int
	Skipped int
}

// Converter streams LDIF entries through Builders into an encoder. One
// Converter serves a whole run, across any number of input streams, so
// its registry covers every input.
type Converter struct {
	opts     Options
	log      *slog.Logger
	enc      *vcard.Encoder
	registry *diagnostic.Registry
	stats    Stats
}

// NewConverter creates a Converter writing cards to w.
func NewConverter(w io.Writer, opts Options) *Converter {
	return &Converter{
		opts:     opts,
		log:      opts.logger(),
		enc:      vcard.NewEncoder(w),
		registry: diagnostic.NewRegistry(),
	}
}

// ConvertStream converts every entry of an LDIF stream, writing each card
// as soon as it is built.
func (c *Converter) ConvertStream(r io.Reader) error {
	lr := ldif.NewReader(r)

	for {
		rec, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("reading LDIF: %w", err)
		}

		if err := c.ConvertRecord(rec); err != nil {
			return err
		}
	}
}

// ConvertRecord converts a single entry.
func (c *Converter) ConvertRecord(rec *ldif.Record) error {
	c.stats.Records++

	c.log.Debug("entry", "dn", rec.DN, "line", rec.Line)

	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		c.log.Debug("entry attributes", "dn", rec.DN, "attributes", spew.Sdump(rec.Attributes))
	}

	b := NewBuilder(rec.DN, c.opts)

	for _, attr := range rec.Attributes {
		if err := b.Put(fieldKey(attr.Name), attr.Values); err != nil {
			return fmt.Errorf("entry %q (line %d): %w", rec.DN, rec.Line, err)
		}
	}

	card, err := b.Build()

	c.registry.Collect(b.Diagnostics())

	if err != nil {
		return fmt.Errorf("entry %q (line %d): %w", rec.DN, rec.Line, err)
	}

	if card == nil {
		c.stats.Skipped++
		return nil
	}

	if err := c.enc.Encode(card); err != nil {
		return fmt.Errorf("writing vCard: %w", err)
	}

	c.stats.Cards++

	return nil
}

// fieldKey renames the ringtone attribute to its handler name.
func fieldKey(name string) string {
	if strings.EqualFold(name, RingtoneField) {
		return ringtoneKey
	}

	return name
}

// Registry returns the run-wide registry of unsupported attributes.
func (c *Converter) Registry() *diagnostic.Registry {
	return c.registry
}

// Report writes the unsupported-attribute listing to w, if there is any.
func (c *Converter) Report(w io.Writer) error {
	return c.registry.Report(w)
}

// Stats returns the counters for the run so far.
func (c *Converter) Stats() Stats {
	return c.stats
}
