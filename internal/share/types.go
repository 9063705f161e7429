// Package share turns a card into a cast and hands it to a composer.
package share

import (
	"context"
	"errors"
)

// MaxEmbeds is the most embeds a cast may carry.
const MaxEmbeds = 2

// ErrNoComposer is returned by Share when no composer is configured.
var ErrNoComposer = errors.New("share: no composer configured")

// Embed is either a path under the app URL (which gets tracking parameters)
// or an absolute URL passed through untouched.
type Embed struct {
	Path string
	URL  string
}

// Request is what the UI asks to share.
type Request struct {
	Text   string
	Embeds []Embed
	// MentionFriends enables @N placeholder substitution.
	MentionFriends bool
}

// Cast is the payload handed to the composer.
type Cast struct {
	Text   string   `json:"text"`
	Embeds []string `json:"embeds,omitempty"`
}

// Composer opens the cast composer with a prepared cast.
type Composer interface {
	Compose(ctx context.Context, cast Cast) error
}

// Friend is a resolved mention target.
type Friend struct {
	FID      int    `json:"fid"`
	Username string `json:"username"`
}

// FriendSource resolves a viewer's best friends, in rank order.
type FriendSource interface {
	BestFriends(ctx context.Context, fid int) ([]Friend, error)
}
