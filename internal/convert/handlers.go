package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"ldif2vcard/internal/common"
	"ldif2vcard/internal/vcard"
)

// handler applies one LDIF attribute to a Builder.
type handler func(b *Builder, values []string) error

// handlers maps lower-cased LDIF attribute names to their handlers.
var handlers = lowerKeys(map[string]handler{
	// Name
	"cn":              direct(vcard.FieldFormattedName),
	"givenName":       putGivenName,
	"sn":              putFamilyName,
	"mozillaNickname": direct(vcard.FieldNickname),
	"title":           direct(vcard.FieldTitle),

	// Phone, email and web
	"homePhone":                direct(vcard.FieldTelephone, vcard.TypeHome),
	"mobile":                   direct(vcard.FieldTelephone, vcard.TypeCell),
	"telephoneNumber":          direct(vcard.FieldTelephone, vcard.TypeWork),
	"facsimiletelephonenumber": direct(vcard.FieldTelephone, vcard.TypeFax),
	"pager":                    direct(vcard.FieldTelephone, vcard.TypePager),
	"mail":                     direct(vcard.FieldEmail, vcard.TypeInternet, vcard.TypePref),
	"mozillaSecondEmail":       direct(vcard.FieldEmail, vcard.TypeInternet),
	"mozillaHomeUrl":           direct(vcard.FieldURL, vcard.TypeHome),
	"mozillaWorkUrl":           direct(vcard.FieldURL, vcard.TypeWork),
	ringtoneKey:                putRingtone,

	// Birthday
	"birthyear":  birthdayPart(0),
	"birthmonth": birthdayPart(1),
	"birthday":   birthdayPart(2),

	// Home address. PoBox and Extended are not real Thunderbird names.
	"mozillaHomePoBox":        addressPart(contextHome, func(a *address, v string) { a.box = v }),
	"mozillaHomeExtended":     addressPart(contextHome, func(a *address, v string) { a.extended = v }),
	"mozillaHomeStreet":       streetPart(contextHome, func(a *address) *[]string { return &a.street }),
	"mozillaHomeStreet2":      streetPart(contextHome, func(a *address) *[]string { return &a.street2 }),
	"mozillaHomeLocalityName": addressPart(contextHome, func(a *address, v string) { a.city = v }),
	"mozillaHomeState":        addressPart(contextHome, func(a *address, v string) { a.region = v }),
	"mozillaHomePostalCode":   addressPart(contextHome, func(a *address, v string) { a.postalCode = v }),
	"mozillaHomeCountryName":  addressPart(contextHome, func(a *address, v string) { a.country = v }),

	// Work address
	"mozillaWorkPoBox":    addressPart(contextWork, func(a *address, v string) { a.box = v }),
	"mozillaWorkExtended": addressPart(contextWork, func(a *address, v string) { a.extended = v }),
	"street":              streetPart(contextWork, func(a *address) *[]string { return &a.street }),
	"mozillaWorkStreet2":  streetPart(contextWork, func(a *address) *[]string { return &a.street2 }),
	"l":                   addressPart(contextWork, func(a *address, v string) { a.city = v }),
	"st":                  addressPart(contextWork, func(a *address, v string) { a.region = v }),
	"postalCode":          addressPart(contextWork, func(a *address, v string) { a.postalCode = v }),
	"c":                   addressPart(contextWork, func(a *address, v string) { a.country = v }),

	// Organization
	"o":  putOrganization,
	"ou": putOrganizationUnits,

	// Miscellaneous
	"description":     putNote,
	"nsAIMid":         putAIM,
	"modifytimestamp": putTimestamp,
	"objectclass":     putObjectClass,
	// Only seen in group aliases, which are skipped anyway.
	"member": ignore,
})

func lowerKeys(m map[string]handler) map[string]handler {
	out := make(map[string]handler, len(m))
	for k, h := range m {
		out[strings.ToLower(k)] = h
	}

	return out
}

func first(values []string) string {
	return common.FirstOr(values, "")
}

func ptr(s string) *string {
	return &s
}

func ignore(*Builder, []string) error {
	return nil
}

func putGivenName(b *Builder, v []string) error {
	b.givenName = ptr(first(v))
	return nil
}

func putFamilyName(b *Builder, v []string) error {
	b.familyName = ptr(first(v))
	return nil
}

func putOrganization(b *Builder, v []string) error {
	b.org = ptr(first(v))
	return nil
}

// putOrganizationUnits appends every value in supply order.
func putOrganizationUnits(b *Builder, v []string) error {
	b.orgUnits = append(b.orgUnits, v...)
	return nil
}

// direct writes the first value as a text property.
func direct(name string, types ...string) handler {
	return func(b *Builder, v []string) error {
		b.card.AddText(name, first(v), types...)
		return nil
	}
}

func birthdayPart(i int) handler {
	return func(b *Builder, v []string) error {
		b.birthdayParts()[i] = first(v)
		return nil
	}
}

func addressPart(ctx string, set func(*address, string)) handler {
	return func(b *Builder, v []string) error {
		set(b.addressFor(ctx), first(v))
		return nil
	}
}

// streetPart appends every value: multi-valued street attributes are
// continuation lines.
func streetPart(ctx string, list func(*address) *[]string) handler {
	return func(b *Builder, v []string) error {
		l := list(b.addressFor(ctx))
		*l = append(*l, v...)

		return nil
	}
}

func putRingtone(b *Builder, v []string) error {
	b.setRingtone(first(v))
	return nil
}

// setRingtone writes the X-ACTIVITY-ALERT property for tone. A tone
// without a scope is taken from the "system:" scope.
func (b *Builder) setRingtone(tone string) {
	tone = strings.TrimSpace(tone)
	if !strings.Contains(tone, ":") {
		tone = "system:" + tone
	}

	if strings.ContainsFunc(tone, unicode.IsSpace) {
		tone = `"` + tone + `"`
	}

	b.card.AddRaw(vcard.FieldActivityAlert, "type=call,snd="+tone)
	b.ringtone = true
}

func putNote(b *Builder, v []string) error {
	if note := strings.TrimSpace(first(v)); note != "" {
		b.card.AddText(vcard.FieldNote, note)
	}

	return nil
}

func putAIM(b *Builder, v []string) error {
	b.card.AddText(vcard.FieldNote, "AIM: "+strings.TrimSpace(first(v)))
	return nil
}

var generalizedTime = regexp.MustCompile(`^\d{14}Z$`)

// putTimestamp writes REV from epoch seconds. Thunderbird writes "0Z" for
// entries it never stamped; zero is skipped.
func putTimestamp(b *Builder, v []string) error {
	raw := strings.TrimSpace(first(v))

	var ts time.Time

	if generalizedTime.MatchString(raw) {
		t, err := time.Parse("20060102150405Z", raw)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidTimestamp, raw, err)
		}

		ts = t
	} else {
		secs, err := strconv.ParseInt(strings.TrimSuffix(raw, "Z"), 10, 64)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidTimestamp, raw, err)
		}

		if secs == 0 {
			return nil
		}

		ts = time.Unix(secs, 0)
	}

	b.card.AddRaw(vcard.FieldRevision, ts.UTC().Format("2006-01-02T15:04:05")+"Z")

	return nil
}

const groupAliasClass = "groupOfNames"

// putObjectClass marks group aliases so Build skips them.
func putObjectClass(b *Builder, v []string) error {
	for _, class := range v {
		if strings.EqualFold(class, groupAliasClass) {
			b.skip = true
		}
	}

	return nil
}
