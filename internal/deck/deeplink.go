package deck

import (
	"net/url"
	"path"
	"strconv"
	"strings"
)

// DeepLinkParam is the query parameter that selects a principle (1-based).
const DeepLinkParam = "principle"

// ParseDeepLink extracts the 1-based principle number from raw. It accepts a
// bare integer, a URL with ?principle=N, or a share URL ending in /share/N.
// ok is false when raw carries no usable number.
func ParseDeepLink(raw string) (value int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}

	u, err := url.Parse(raw)
	if err != nil {
		return 0, false
	}
	if v := u.Query().Get(DeepLinkParam); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}

	dir, last := path.Split(strings.TrimSuffix(u.Path, "/"))
	if path.Base(dir) == "share" {
		if n, err := strconv.Atoi(last); err == nil {
			return n, true
		}
	}
	return 0, false
}

// DeepLinkIndex maps raw to a 0-based start index in [0, total-1].
// Malformed or missing input starts at the first card.
func DeepLinkIndex(raw string, total int) int {
	v, ok := ParseDeepLink(raw)
	if !ok || total < 1 {
		return 0
	}
	return clamp(v-1, 0, total-1)
}
