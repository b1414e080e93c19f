package repositories

import "errors"

// ErrNotFound marks a lookup that matched no row. Repositories wrap it
// into their error messages so callers can test with errors.Is instead
// of matching message text.
var ErrNotFound = errors.New("not found")
