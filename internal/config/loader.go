package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/principles"
	projectConfigDir = ".principles"
	configFileName   = "config.yaml"

	// EnvPrefix prefixes every environment override, e.g. PRINCIPLES_VIEWER_FID.
	EnvPrefix = "PRINCIPLES_"
)

// LoadConfig layers default, user, project and explicit settings, then applies
// PRINCIPLES_* environment overrides. explicitPath may be empty; when set the
// file must exist.
func LoadConfig(explicitPath string) (PrinciplesConfig, error) {
	return loadConfig(explicitPath, nil)
}

// loadConfig takes the environment as a map so tests need not touch the process env.
// A nil environ reads the process environment.
func loadConfig(explicitPath string, environ map[string]string) (PrinciplesConfig, error) {
	// defaults first
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// the user file is optional
		fmt.Fprintf(os.Stderr, "warning: no user config directory: %v\n", err)
	} else if config, err = mergeOptionalFile(config, userConfigPath); err != nil {
		return PrinciplesConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no project config directory: %v\n", err)
	} else if config, err = mergeOptionalFile(config, projectConfigPath); err != nil {
		return PrinciplesConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	// 4. Explicit --config path
	if explicitPath != "" {
		explicit, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return PrinciplesConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicit)
	}

	// 5. Environment
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&config, opts); err != nil {
		return PrinciplesConfig{}, fmt.Errorf("error applying environment overrides: %w", err)
	}

	return config, nil
}

func mergeOptionalFile(base PrinciplesConfig, path string) (PrinciplesConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PrinciplesConfig from a YAML file.
func loadConfigFromFile(filePath string) (PrinciplesConfig, error) {
	var config PrinciplesConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PrinciplesConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return PrinciplesConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay PrinciplesConfig) PrinciplesConfig {
	merged := base

	// App
	setString(&merged.App.URL, overlay.App.URL)
	setString(&merged.App.AttributionURL, overlay.App.AttributionURL)
	setString(&merged.App.Author, overlay.App.Author)

	// Viewer
	setInt(&merged.Viewer.FID, overlay.Viewer.FID)
	setString(&merged.Viewer.Username, overlay.Viewer.Username)

	// Gesture
	g := overlay.Gesture
	setFloat(&merged.Gesture.DistanceThreshold, g.DistanceThreshold)
	setFloat(&merged.Gesture.VelocityThreshold, g.VelocityThreshold)
	setFloat(&merged.Gesture.FlickFactor, g.FlickFactor)
	setFloat(&merged.Gesture.BoundaryResistance, g.BoundaryResistance)
	setFloat(&merged.Gesture.TapEdgeFraction, g.TapEdgeFraction)
	setFloat(&merged.Gesture.UnitsPerCell, g.UnitsPerCell)
	if g.TransitionDuration > 0 {
		merged.Gesture.TransitionDuration = g.TransitionDuration
	}

	// Share
	s := overlay.Share
	setString(&merged.Share.Composer, s.Composer)
	setString(&merged.Share.ComposeURL, s.ComposeURL)
	setString(&merged.Share.FriendsAPI, s.FriendsAPI)
	setString(&merged.Share.PrincipleTemplate, s.PrincipleTemplate)
	setString(&merged.Share.EndTemplate, s.EndTemplate)
	if s.FriendsTimeout > 0 {
		merged.Share.FriendsTimeout = s.FriendsTimeout
	}
	// Only if explicitly set in overlay
	if s.MentionFriends != nil {
		v := *s.MentionFriends
		merged.Share.MentionFriends = &v
	}

	// Tip
	tp := overlay.Tip
	setString(&merged.Tip.RecipientAddress, tp.RecipientAddress)
	setInt(&merged.Tip.RecipientFID, tp.RecipientFID)
	setString(&merged.Tip.Opener, tp.Opener)
	setString(&merged.Tip.Token, tp.Token)
	setInt(&merged.Tip.ChainID, tp.ChainID)
	if len(tp.Presets) > 0 {
		merged.Tip.Presets = append([]string(nil), tp.Presets...)
		// A new preset list resets the default unless the overlay names one.
		merged.Tip.DefaultPreset = tp.DefaultPreset
	} else {
		setInt(&merged.Tip.DefaultPreset, tp.DefaultPreset)
	}

	setString(&merged.Haptics.Mode, overlay.Haptics.Mode)
	if overlay.UI.StatusDuration > 0 {
		merged.UI.StatusDuration = overlay.UI.StatusDuration
	}
	setString(&merged.LogLevel, overlay.LogLevel)

	return merged
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// GetUserConfigDir returns $HOME/.config/principles.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
