// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// NameKey canonicalizes a display name into the key used to match roster
// rows against the email directory: lower-cased, internal whitespace runs
// collapsed to single spaces, ends trimmed. Total over any input and
// idempotent. The empty string maps to the empty key, which callers must not
// treat as a real identity.
func NameKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Name trims surrounding whitespace from a display name, preserving case.
func Name(name string) string {
	return strings.TrimSpace(name)
}
