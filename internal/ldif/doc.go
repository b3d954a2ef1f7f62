// Package ldif reads LDIF (RFC 2849) address-book exports one record at
// a time.
//
// The reader understands the subset of LDIF produced by mail clients such
// as Thunderbird: an optional "version:" header, "#" comments, folded
// lines, plain "attr: value" pairs and base64 "attr:: value" pairs.
// Change records and "attr:< url" references are not supported.
//
// Example usage:
//
//	r := ldif.NewReader(f)
//	for {
//	    rec, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(rec.DN, len(rec.Attributes))
//	}
package ldif
