package cache

import (
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
)

// Key derives the cache key of a request from its method, path and query.
// Query parameters are encoded in sorted order, so "?a=1&b=2" and "?b=2&a=1"
// share an entry.
func Key(prefix, method, path string, query url.Values) string {
	h := xxhash.New()
	_, _ = h.WriteString(method)
	_, _ = h.WriteString(" ")
	_, _ = h.WriteString(path)
	_, _ = h.WriteString("?")
	_, _ = h.WriteString(query.Encode())
	return fmt.Sprintf("%s:%016x", prefix, h.Sum64())
}
