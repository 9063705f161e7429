package share

import (
	"regexp"
	"strconv"
)

var mentionPlaceholder = regexp.MustCompile(`@\d+`)

// SubstituteMentions replaces each @N with the N-th friend's @username
// (1-based) and strips placeholders with no matching friend. A nil slice
// strips every placeholder.
func SubstituteMentions(text string, friends []Friend) string {
	return mentionPlaceholder.ReplaceAllStringFunc(text, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil || n < 1 || n > len(friends) {
			return ""
		}
		if u := friends[n-1].Username; u != "" {
			return "@" + u
		}
		return ""
	})
}
