// Package session holds the per-run viewer context: who is looking at the deck,
// which tab is active and whether the app was added to their client.
package session

import (
	"fmt"

	"github.com/google/uuid"
)

// Tab is the active screen of the app.
type Tab string

const (
	TabHome    Tab = "home"
	TabActions Tab = "actions"
	TabContext Tab = "context"
	TabWallet  Tab = "wallet"
)

// Viewer identifies the person using the deck. FID is zero when unknown.
type Viewer struct {
	FID      int
	Username string
}

// Known reports whether the viewer has a Farcaster id.
func (v Viewer) Known() bool {
	return v.FID > 0
}

// Session is the single owned context passed to components that need viewer state.
type Session struct {
	ID     string
	Viewer Viewer
	Tab    Tab
	// Added is set once the user has added the app to their client.
	Added bool
}

// New starts a session on the home tab.
func New(viewer Viewer) *Session {
	return &Session{
		ID:     uuid.New().String(),
		Viewer: viewer,
		Tab:    TabHome,
	}
}

// ShareSource is the tracking value attached to shared links.
func (s *Session) ShareSource() string {
	if s == nil || !s.Viewer.Known() {
		return "share-cast-unknown"
	}
	return fmt.Sprintf("share-cast-%d", s.Viewer.FID)
}

// SetTab switches the active tab. Unknown tabs fall back to home.
func (s *Session) SetTab(t Tab) {
	switch t {
	case TabHome, TabActions, TabContext, TabWallet:
		s.Tab = t
	default:
		s.Tab = TabHome
	}
}
