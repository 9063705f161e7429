// Package tui is the terminal front end of the principles deck.
//
// It follows a Model-View-Controller split on top of Bubble Tea:
//
//   - model: state of one run, key bindings, the tick-backed deck scheduler
//     and the commands that call out to share and tip gateways
//   - view: pure rendering of the deck, card and overlays
//   - controller: message dispatch, keyboard and mouse handling, and the
//     tea.Program setup
//
// Mouse support relies on cell-motion reporting. A left-button drag across
// the card is a swipe, a click near either edge steps one card.
//
// Deck transitions are driven through model.TickScheduler so that index
// changes happen on the event loop rather than on a timer goroutine.
package tui
