// Package config provides configuration management for principles.
//
// Configuration is layered. Each later source overrides the fields it sets:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/principles/config.yaml)
//  3. Project configuration (./.principles/config.yaml)
//  4. An explicit file passed with --config
//  5. PRINCIPLES_* environment variables, e.g. PRINCIPLES_VIEWER_FID=42
//
// # Configuration Structure
//
//	app:
//	  url: "https://principles.example"
//	  author: "@Jake"
//	viewer:
//	  fid: 42
//	  username: "ana"
//	gesture:
//	  distanceThreshold: 100
//	  transitionDuration: 300ms
//	  unitsPerCell: 8
//	share:
//	  composer: browser      # browser, clipboard or stdout
//	  mentionFriends: true
//	tip:
//	  presets: ["1", "5", "10", "25"]
//	  defaultPreset: 1
//	  opener: browser
//	haptics:
//	  mode: bell             # bell, log or off
//	ui:
//	  statusDuration: 2s
//	logLevel: info
//
// Zero values in a file leave the lower layer untouched, so a file only needs
// the keys it changes. A file that sets tip.presets also resets
// tip.defaultPreset to its own value (0 when omitted).
package config
