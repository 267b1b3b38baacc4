// Package qname implements qualified names: sequences of declared names
// joined by "::". A segment that itself contains ':' or '\' is written with
// a backslash escape, so every Name has exactly one string form.
package qname
