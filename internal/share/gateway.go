package share

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"principles/internal/session"
	"principles/pkg/logging"
)

const subsystem = "Share"

// TrackingParam is the query parameter added to app links in a cast.
const TrackingParam = "utm_source"

// Gateway prepares casts and hands them to a Composer.
type Gateway struct {
	AppURL   string
	Session  *session.Session
	Composer Composer
	// Friends is optional; without it @N placeholders are stripped.
	Friends        FriendSource
	FriendsTimeout time.Duration
}

// Prepare resolves mentions and embeds without composing. It never fails:
// unresolvable mentions are stripped and bad embeds are dropped.
func (g *Gateway) Prepare(ctx context.Context, req Request) Cast {
	text := req.Text
	if req.MentionFriends {
		text = SubstituteMentions(text, g.friends(ctx))
	}

	embeds := make([]string, 0, len(req.Embeds))
	for _, e := range req.Embeds {
		u, err := g.resolveEmbed(e)
		if err != nil {
			logging.Warn(subsystem, "dropping embed %+v: %v", e, err)
			continue
		}
		embeds = append(embeds, u)
	}
	if len(embeds) > MaxEmbeds {
		logging.Warn(subsystem, "cast has %d embeds, keeping the first %d", len(embeds), MaxEmbeds)
		embeds = embeds[:MaxEmbeds]
	}

	return Cast{Text: text, Embeds: embeds}
}

// Share prepares req and opens the composer with it.
func (g *Gateway) Share(ctx context.Context, req Request) (Cast, error) {
	cast := g.Prepare(ctx, req)
	if g.Composer == nil {
		return cast, ErrNoComposer
	}
	if err := g.Composer.Compose(ctx, cast); err != nil {
		logging.Error(subsystem, err, "compose failed")
		return cast, fmt.Errorf("compose cast: %w", err)
	}
	logging.Info(subsystem, "cast composed (%d embeds)", len(cast.Embeds))
	return cast, nil
}

func (g *Gateway) friends(ctx context.Context) []Friend {
	if g.Friends == nil || g.Session == nil || !g.Session.Viewer.Known() {
		return nil
	}
	timeout := g.FriendsTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	friends, err := g.Friends.BestFriends(ctx, g.Session.Viewer.FID)
	if err != nil {
		logging.Warn(subsystem, "best friends lookup failed, stripping mentions: %v", err)
		return nil
	}
	return friends
}

func (g *Gateway) resolveEmbed(e Embed) (string, error) {
	if e.Path == "" {
		if e.URL == "" {
			return "", fmt.Errorf("empty embed")
		}
		return e.URL, nil
	}

	base := strings.TrimRight(g.AppURL, "/")
	p := e.Path
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u, err := url.Parse(base + p)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("app url %q is not absolute", g.AppURL)
	}
	q := u.Query()
	q.Set(TrackingParam, g.Session.ShareSource())
	u.RawQuery = q.Encode()
	return u.String(), nil
}
