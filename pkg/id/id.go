// Package id produces resource ids for create calls.
package id

// Unique asks the server to generate the id.
func Unique() string {
	return "unique()"
}

// Custom uses the given id as-is. Valid ids are up to 36 characters of
// a-z, A-Z, 0-9, period, hyphen and underscore, not starting with a special
// character; the server enforces this.
func Custom(id string) string {
	return id
}
