// Package sfv implements parsing and serializing of HTTP Structured
// Field Values as defined by RFC 9651 (a superset of RFC 8941 adding
// the Date and Display String types).
//
// The package transforms one field value byte sequence into a typed
// tree and inverts that transformation to the canonical byte form.
//
// # Data Model
//
// A field value is exactly one of three kinds:
//
//	Item        bare item with parameters
//	List        sequence of items and inner lists
//	Dictionary  ordered key to item-or-inner-list map
//
// Bare items are booleans, integers, decimals, strings, tokens, byte
// sequences, dates, and display strings. Byte sequences carry the
// undecoded base64 text; decoding is left to the caller. Dictionaries
// and parameter maps preserve insertion order, and overwriting a key
// keeps its original position.
//
// # Parsing and Serializing
//
//	item, err := sfv.ParseItem([]byte(`5;bar=baz`))
//	list, err := sfv.ParseList([]byte(`a, (b c);q=0.5`))
//	dict, err := sfv.ParseDictionary([]byte(`u=?1, v="hi"`))
//
// Serialization produces the unique canonical form; parsing the
// canonical form and re-serializing yields identical bytes.
//
//	out, err := sfv.WriteList(list)
//
// A Serializer value reuses its scratch buffer across calls. Parse
// entry points and one-shot Write helpers are safe to call from
// multiple goroutines; a single Serializer is not.
//
// # Errors
//
// All failures are returned, never panicked. Parse errors wrap a
// sentinel describing the failing production (ErrInvalidString,
// ErrInvalidList, ...) in a SyntaxError carrying the input offset;
// match the kind with errors.Is.
//
// Callers concatenate continuation lines with ", " before parsing;
// the package performs no I/O and no base64 decoding.
package sfv
