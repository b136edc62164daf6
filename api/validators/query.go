package validators

import (
	"net/http"
	"strings"
)

// TrimmedQuery returns the named query parameter with surrounding whitespace
// removed. Trimming happens here, at the transport boundary, and nowhere else.
func TrimmedQuery(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
