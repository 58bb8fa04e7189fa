// Package rules turns enable/disable patterns into an ordered rule list.
//
// A pattern is a tag with optional '*' wildcards. Compile escapes every
// other regexp metacharacter and anchors the result, so "db:*" matches
// "db:pool" but not "mydb:pool", and "a.b" matches only the literal
// "a.b". Patterns without a wildcard never touch the regexp engine.
//
// Store keeps rules in insertion order and Resolve returns the first
// match. Order therefore matters: with "*" added before "!noisy" the
// broad rule wins, and callers wanting an override must add it first.
// Upserting a pattern that already exists updates the rule in place and
// keeps its position.
//
// ParseSpec reads the combined form used by the DEBUG environment
// variable: tokens separated by whitespace or commas, '!' marking a
// disable.
package rules
