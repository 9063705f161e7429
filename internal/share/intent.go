package share

import (
	"context"
	"net/url"

	"principles/internal/opener"
)

// DefaultComposeURL is the Farcaster web compose intent.
const DefaultComposeURL = "https://farcaster.xyz/~/compose"

// IntentComposer encodes a cast as a compose-intent URL and opens it.
type IntentComposer struct {
	BaseURL string
	Opener  opener.Opener
}

// IntentURL returns the compose URL for cast.
func (c IntentComposer) IntentURL(cast Cast) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultComposeURL
	}
	q := url.Values{}
	q.Set("text", cast.Text)
	for _, e := range cast.Embeds {
		q.Add("embeds[]", e)
	}
	return base + "?" + q.Encode()
}

// Compose implements Composer.
func (c IntentComposer) Compose(ctx context.Context, cast Cast) error {
	return c.Opener.Open(ctx, c.IntentURL(cast))
}
