package config

import "time"

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() PrinciplesConfig {
	mention := true
	return PrinciplesConfig{
		App: AppConfig{
			URL:            "http://localhost:3000",
			AttributionURL: "https://farcaster.xyz/jake/0x23e58327",
			Author:         "@Jake",
		},
		Gesture: GestureConfig{
			DistanceThreshold:  100,
			VelocityThreshold:  0.5,
			FlickFactor:        0.6,
			BoundaryResistance: 0.2,
			TapEdgeFraction:    0.4,
			TransitionDuration: 300 * time.Millisecond,
			UnitsPerCell:       8,
		},
		Share: ShareConfig{
			Composer:       "browser",
			ComposeURL:     "https://farcaster.xyz/~/compose",
			FriendsTimeout: 3 * time.Second,
			MentionFriends: &mention,
		},
		Tip: TipConfig{
			RecipientAddress: "0xFFe16898FC0af80ee9BCF29D2B54a0F20F9498ad",
			RecipientFID:     1356870,
			Presets:          []string{"1", "5", "10", "25"},
			DefaultPreset:    1,
			Opener:           "browser",
			Token:            "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
			ChainID:          8453,
		},
		Haptics:  HapticsConfig{Mode: "bell"},
		UI:       UIConfig{StatusDuration: 2 * time.Second},
		LogLevel: "info",
	}
}
