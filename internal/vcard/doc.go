// Package vcard models vCard 3.0 (RFC 2426) cards and encodes them.
//
// A Card is an ordered list of properties. Values are kept unescaped and
// typed as text, raw or structured; escaping happens only in the Encoder:
//
//   - text values escape backslash, comma, semicolon and newlines
//   - structured values (N, ADR, ORG) escape each component and join the
//     components with ';', list components (ADR street lines) with ','
//   - raw values (REV, BDAY, UID, X- extensions) are written verbatim
//
// The Encoder writes VERSION first, then UID, then the remaining
// properties sorted by name, with CRLF line endings and 75-octet folding.
package vcard
