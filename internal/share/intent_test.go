package share

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"principles/internal/opener"
)

func TestIntentURL(t *testing.T) {
	c := IntentComposer{}
	raw := c.IntentURL(Cast{Text: "a b & c", Embeds: []string{"https://x.example/1", "https://y.example"}})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "farcaster.xyz", u.Host)
	assert.Equal(t, "/~/compose", u.Path)
	assert.Equal(t, "a b & c", u.Query().Get("text"))
	assert.Equal(t, []string{"https://x.example/1", "https://y.example"}, u.Query()["embeds[]"])
}

func TestIntentComposerOpens(t *testing.T) {
	var got string
	c := IntentComposer{
		BaseURL: "https://compose.example/new",
		Opener: opener.Func(func(_ context.Context, target string) error {
			got = target
			return nil
		}),
	}

	require.NoError(t, c.Compose(context.Background(), Cast{Text: "hi"}))
	assert.Equal(t, "https://compose.example/new?text=hi", got)
}
