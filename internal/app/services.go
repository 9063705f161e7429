package app

import (
	"fmt"
	"net/http"
	"os"

	"principles/internal/card"
	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/mcpserver"
	"principles/internal/opener"
	"principles/internal/principles"
	"principles/internal/session"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/internal/tui/model"
)

// Services holds all the initialized services
type Services struct {
	Store     *principles.Store
	Renderer  *card.Renderer
	Session   *session.Session
	Scheduler *model.TickScheduler
	Deck      *deck.Controller
	Haptics   haptics.Dispatcher

	Templates *share.Templates
	Share     *share.Gateway
	Tip       *tip.Gateway
	TipTarget mcpserver.TipTarget
	Presets   []tip.Amount
	// Links opens attribution and other plain links.
	Links opener.Opener
}

// InitializeServices wires the deck, share and tip services from cfg.PrinciplesConfig.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.PrinciplesConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	pc := cfg.PrinciplesConfig
	stdout := cfg.stdout()

	store := principles.Default()
	sess := session.New(session.Viewer{FID: pc.Viewer.FID, Username: pc.Viewer.Username})

	h, err := haptics.New(pc.Haptics.Mode, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("haptics: %w", err)
	}

	sched := model.NewTickScheduler()
	d, err := deck.New(store.Len(),
		deck.WithScheduler(sched),
		deck.WithHaptics(h),
		deck.WithConfig(deck.Config{
			DistanceThreshold:  pc.Gesture.DistanceThreshold,
			VelocityThreshold:  pc.Gesture.VelocityThreshold,
			FlickFactor:        pc.Gesture.FlickFactor,
			BoundaryResistance: pc.Gesture.BoundaryResistance,
			TapEdgeFraction:    pc.Gesture.TapEdgeFraction,
			TransitionDuration: pc.Gesture.TransitionDuration,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	d.Initialize(deck.DeepLinkIndex(cfg.StartLink, store.Len()))

	templates, err := share.NewTemplates(share.TemplateConfig{
		Principle:      pc.Share.PrincipleTemplate,
		End:            pc.Share.EndTemplate,
		AppURL:         pc.App.URL,
		Author:         pc.App.Author,
		MentionFriends: pc.Share.Mentions(),
	})
	if err != nil {
		return nil, err
	}

	composeOpener, err := opener.ByName(pc.Share.Composer, stdout)
	if err != nil {
		return nil, fmt.Errorf("share composer: %w", err)
	}
	shareGateway := &share.Gateway{
		AppURL:         pc.App.URL,
		Session:        sess,
		Composer:       share.IntentComposer{BaseURL: pc.Share.ComposeURL, Opener: composeOpener},
		FriendsTimeout: pc.Share.FriendsTimeout,
	}
	if pc.Share.Mentions() && sess.Viewer.Known() {
		base := pc.Share.FriendsAPI
		if base == "" {
			base = pc.App.URL
		}
		shareGateway.Friends = share.APIFriendSource{
			BaseURL: base,
			Client:  &http.Client{Timeout: pc.Share.FriendsTimeout},
		}
	}

	tipOpener, err := opener.ByName(pc.Tip.Opener, stdout)
	if err != nil {
		return nil, fmt.Errorf("tip opener: %w", err)
	}
	presets, err := ParsePresets(pc.Tip.Presets)
	if err != nil {
		return nil, err
	}
	target := mcpserver.TipTarget{
		Address: pc.Tip.RecipientAddress,
		FID:     pc.Tip.RecipientFID,
		Token:   pc.Tip.Token,
		ChainID: pc.Tip.ChainID,
		Default: tip.NewSelection(presets, pc.Tip.DefaultPreset).Final(),
	}

	return &Services{
		Store:     store,
		Renderer:  card.NewRenderer(store),
		Session:   sess,
		Scheduler: sched,
		Deck:      d,
		Haptics:   h,
		Templates: templates,
		Share:     shareGateway,
		Tip: &tip.Gateway{Wallet: tip.PaymentLinkWallet{
			Token:   pc.Tip.Token,
			ChainID: pc.Tip.ChainID,
			Opener:  tipOpener,
		}},
		TipTarget: target,
		Presets:   presets,
		Links:     opener.Browser{},
	}, nil
}

// ParsePresets parses decimal USDC amounts. An empty list yields the defaults.
func ParsePresets(raw []string) ([]tip.Amount, error) {
	if len(raw) == 0 {
		return tip.DefaultPresets, nil
	}
	out := make([]tip.Amount, 0, len(raw))
	for _, s := range raw {
		a, err := tip.ParseAmount(s)
		if err != nil {
			return nil, fmt.Errorf("tip preset %q: %w", s, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// NewTipSelection starts the tip dialog on the configured preset.
func (s *Services) NewTipSelection(def int) *tip.Selection {
	return tip.NewSelection(s.Presets, def)
}
