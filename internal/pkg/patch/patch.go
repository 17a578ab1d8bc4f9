// Package patch merges partial updates over current values.
package patch

// Coalesce yields *field when the caller sent it and current otherwise.
func Coalesce[T any](field *T, current T) T {
	if field != nil {
		return *field
	}
	return current
}
