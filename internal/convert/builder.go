package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"ldif2vcard/internal/diagnostic"
	"ldif2vcard/internal/vcard"
)

// RingtoneField is the LDIF attribute holding contacts' ringtone names.
// Thunderbird only exports its "Custom N" fields, so one of them is used.
// Override at build time with
//
//	-ldflags "-X ldif2vcard/internal/convert.RingtoneField=mozillaCustom2"
var RingtoneField = "mozillaCustom1"

// ringtoneKey is the handler name the RingtoneField attribute is renamed to.
const ringtoneKey = "ringtone"

var (
	// ErrInvalidEncoding is returned by Put for values that are not UTF-8.
	ErrInvalidEncoding = errors.New("value is not valid UTF-8")
	// ErrInvalidTimestamp is returned by Put for unparseable modifytimestamp values.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrAlreadyBuilt is returned by a second call to Build.
	ErrAlreadyBuilt = errors.New("card already built")
)

// Options configure a Builder.
type Options struct {
	// DefaultRingtone is applied to cards that carry no ringtone of their
	// own. Empty disables it.
	DefaultRingtone string
	// UID adds a UID derived from the entry's DN.
	UID bool
	// Logger receives diagnostics and debug tracing. Nil means slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// Builder accumulates one LDIF entry and builds its vCard.
type Builder struct {
	dn   string
	opts Options
	log  *slog.Logger
	card *vcard.Card

	diags diagnostic.Diagnostics

	givenName  *string
	familyName *string

	home *address
	work *address

	birthday *[3]string

	org      *string
	orgUnits []string

	ringtone bool
	skip     bool
	built    bool
}

// NewBuilder creates a Builder for the entry with the given DN.
func NewBuilder(dn string, opts Options) *Builder {
	return &Builder{
		dn:   dn,
		opts: opts,
		log:  opts.logger(),
		card: vcard.New(),
	}
}

// Put ingests one attribute and its values. Attributes without a mapping
// rule are recorded as unsupported-field diagnostics and do not fail.
//
// A failed Put is also kept as an error diagnostic, so a Builder whose
// caller carried on past the failure refuses to Build.
func (b *Builder) Put(field string, values []string) error {
	h, ok := handlers[strings.ToLower(field)]
	if !ok {
		// Values of unmapped attributes are never decoded, binary ones included.
		b.log.Warn("No support (yet) for field", "field", field, "dn", b.dn)
		b.diags.AddWarning(diagnostic.CodeUnsupportedField, "no mapping rule", b.dn, field)

		return nil
	}

	b.log.Debug("put", "field", field, "values", values)

	if err := b.apply(h, values); err != nil {
		b.diags.AddError(diagnostic.CodeInvalidValue, err, b.dn, field)
		return fmt.Errorf("%s: %w", field, err)
	}

	return nil
}

func (b *Builder) apply(h handler, values []string) error {
	for _, v := range values {
		if !utf8.ValidString(v) {
			return ErrInvalidEncoding
		}
	}

	return h(b, values)
}

// Diagnostics returns the diagnostics gathered so far.
func (b *Builder) Diagnostics() diagnostic.Diagnostics {
	return b.diags
}

// Build composes the deferred parts and returns the finished card. It
// returns a nil card for group aliases, and fails if any Put failed.
// Build may be called only once.
func (b *Builder) Build() (*vcard.Card, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	b.built = true

	if b.diags.HasErrors() {
		return nil, b.diags.Error()
	}

	if b.skip {
		b.debugDump("skipping group alias")
		return nil, nil
	}

	b.debugDump("building")

	b.resolveName()

	if b.home != nil {
		b.card.AddAddress(b.home.resolve(), contextHome)
	}

	if b.work != nil {
		b.card.AddAddress(b.work.resolve(), contextWork)
	}

	if b.birthday != nil {
		b.card.AddRaw(vcard.FieldBirthday, strings.Join(b.birthday[:], "-"))
	}

	var org []string
	if b.org != nil {
		org = append(org, *b.org)
	}

	org = append(org, b.orgUnits...)
	if len(org) > 0 {
		b.card.SetOrganization(org)
	}

	if b.opts.DefaultRingtone != "" && !b.ringtone {
		b.setRingtone(b.opts.DefaultRingtone)
	}

	if b.opts.UID {
		b.card.AddRaw(vcard.FieldUID, "urn:uuid:"+uuid.NewSHA1(uuid.NameSpaceX500, []byte(b.dn)).String())
	}

	return b.card, nil
}

// resolveName sets N from the name parts, falling back to FN as a single
// token. Without either, no N is written.
func (b *Builder) resolveName() {
	if _, ok := b.card.Name(); ok {
		return
	}

	switch {
	case b.familyName != nil && b.givenName != nil:
		b.card.SetName(vcard.Name{Family: *b.familyName, Given: *b.givenName})
	case b.card.Has(vcard.FieldFormattedName):
		b.card.SetName(vcard.Name{Family: b.card.Value(vcard.FieldFormattedName)})
	}
}

func (b *Builder) debugDump(msg string) {
	if !b.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	b.log.Debug(msg, "dn", b.dn, "card", spew.Sdump(b.card.Properties()))
}

func (b *Builder) addressFor(ctx string) *address {
	p := &b.home
	if ctx == contextWork {
		p = &b.work
	}

	if *p == nil {
		*p = &address{}
	}

	return *p
}

func (b *Builder) birthdayParts() *[3]string {
	if b.birthday == nil {
		b.birthday = &[3]string{"????", "??", "??"}
	}

	return b.birthday
}
