// Package convert turns LDIF address-book entries into vCard 3.0 cards.
//
// A Builder is the per-entry accumulator. Put ingests one attribute at a
// time and either writes it straight into the card (FN, TEL, EMAIL, ...)
// or stashes it for later composition (name parts, home and work address
// parts, birthday parts, organization parts). Build composes the stashed
// parts exactly once and returns the finished card, or nil when the entry
// is a group alias (object class groupOfNames).
//
// # Address fragments
//
// Street values are split on ';' and each trimmed fragment is classified,
// case-insensitively:
//
//   - "suite..." or "apt...." becomes the extended address
//   - "p.o. box..." or "pob ..." becomes the post office box
//   - a whole fragment of the form "<word> floor|flr|fl" becomes the
//     extended address
//   - anything else is a street line
//
// "3rd floor" is therefore extended while "12 Foo St., 3rd floor" stays a
// street line.
//
// # Ringtones
//
// The attribute named by RingtoneField (Thunderbird's "Custom 1" slot by
// default) holds a ringtone name. It is written as an X-ACTIVITY-ALERT
// property, which iOS reads. A run-wide default ringtone is applied to
// every card without one, including cards with no phone number: iOS would
// otherwise give any number added later the system default.
//
// Converter drives a whole LDIF stream through Builders and an encoder,
// and keeps the run-wide registry of unsupported attributes.
package convert
