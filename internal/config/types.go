package config

import (
	"time"
)

// PrinciplesConfig is the top-level configuration structure.
type PrinciplesConfig struct {
	App      AppConfig     `yaml:"app" envPrefix:"APP_"`
	Viewer   ViewerConfig  `yaml:"viewer" envPrefix:"VIEWER_"`
	Gesture  GestureConfig `yaml:"gesture" envPrefix:"GESTURE_"`
	Share    ShareConfig   `yaml:"share" envPrefix:"SHARE_"`
	Tip      TipConfig     `yaml:"tip" envPrefix:"TIP_"`
	Haptics  HapticsConfig `yaml:"haptics" envPrefix:"HAPTICS_"`
	UI       UIConfig      `yaml:"ui" envPrefix:"UI_"`
	LogLevel string        `yaml:"logLevel,omitempty" env:"LOG_LEVEL"` // debug, info, warn, error
}

// AppConfig describes where the deck is published and who wrote it.
type AppConfig struct {
	URL            string `yaml:"url,omitempty" env:"URL"`                       // Base URL used for share embeds
	AttributionURL string `yaml:"attributionUrl,omitempty" env:"ATTRIBUTION_URL"` // Link behind the author handle
	Author         string `yaml:"author,omitempty" env:"AUTHOR"`                 // e.g. "@Jake"
}

// ViewerConfig identifies the person running the deck.
type ViewerConfig struct {
	FID      int    `yaml:"fid,omitempty" env:"FID"`
	Username string `yaml:"username,omitempty" env:"USERNAME"`
}

// GestureConfig tunes the navigation state machine. Zero values keep the defaults.
type GestureConfig struct {
	DistanceThreshold  float64       `yaml:"distanceThreshold,omitempty" env:"DISTANCE_THRESHOLD"`
	VelocityThreshold  float64       `yaml:"velocityThreshold,omitempty" env:"VELOCITY_THRESHOLD"` // units per ms
	FlickFactor        float64       `yaml:"flickFactor,omitempty" env:"FLICK_FACTOR"`
	BoundaryResistance float64       `yaml:"boundaryResistance,omitempty" env:"BOUNDARY_RESISTANCE"`
	TapEdgeFraction    float64       `yaml:"tapEdgeFraction,omitempty" env:"TAP_EDGE_FRACTION"`
	TransitionDuration time.Duration `yaml:"transitionDuration,omitempty" env:"TRANSITION_DURATION"`
	// UnitsPerCell converts terminal columns into gesture units.
	UnitsPerCell float64 `yaml:"unitsPerCell,omitempty" env:"UNITS_PER_CELL"`
}

// ShareConfig controls cast composition.
type ShareConfig struct {
	Composer          string        `yaml:"composer,omitempty" env:"COMPOSER"` // browser, clipboard or stdout
	ComposeURL        string        `yaml:"composeUrl,omitempty" env:"COMPOSE_URL"`
	FriendsAPI        string        `yaml:"friendsApi,omitempty" env:"FRIENDS_API"`
	FriendsTimeout    time.Duration `yaml:"friendsTimeout,omitempty" env:"FRIENDS_TIMEOUT"`
	MentionFriends    *bool         `yaml:"mentionFriends,omitempty"`
	PrincipleTemplate string        `yaml:"principleTemplate,omitempty" env:"PRINCIPLE_TEMPLATE"`
	EndTemplate       string        `yaml:"endTemplate,omitempty" env:"END_TEMPLATE"`
}

// Mentions reports whether @N placeholders should be resolved.
func (s ShareConfig) Mentions() bool {
	return s.MentionFriends != nil && *s.MentionFriends
}

// TipConfig describes the tip recipient and the amounts on offer.
type TipConfig struct {
	RecipientAddress string   `yaml:"recipientAddress,omitempty" env:"RECIPIENT_ADDRESS"`
	RecipientFID     int      `yaml:"recipientFid,omitempty" env:"RECIPIENT_FID"`
	Presets          []string `yaml:"presets,omitempty" env:"PRESETS"` // decimal USDC amounts
	DefaultPreset    int      `yaml:"defaultPreset,omitempty" env:"DEFAULT_PRESET"`
	Opener           string   `yaml:"opener,omitempty" env:"OPENER"` // browser, clipboard or stdout
	Token            string   `yaml:"token,omitempty" env:"TOKEN"`
	ChainID          int      `yaml:"chainId,omitempty" env:"CHAIN_ID"`
}

// HapticsConfig selects the feedback dispatcher.
type HapticsConfig struct {
	Mode string `yaml:"mode,omitempty" env:"MODE"` // bell, log or off
}

// UIConfig holds TUI presentation settings.
type UIConfig struct {
	StatusDuration time.Duration `yaml:"statusDuration,omitempty" env:"STATUS_DURATION"`
}
