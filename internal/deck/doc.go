// Package deck implements the navigation state machine behind the card deck.
//
// A Controller owns the current index over N principle cards plus one
// terminal "end" card (index N). Pointer gestures, taps and key presses are
// all resolved into Navigate, which is the only path that changes the index.
// A successful move first enters the Animating phase and the index changes
// when the scheduled transition task fires; while animating every new
// gesture, tap or navigation request is ignored.
//
// # States
//
//	Idle(index) --UpdateGesture--> Dragging(index, offset)
//	Dragging    --EndGesture-----> Idle (spring-back) | Animating (commit)
//	Idle        --Navigate-------> Animating(index, direction)
//	Animating   --task fires-----> Idle(index±1)
//
// # Gesture thresholds
//
// A release commits when the drag distance exceeds the distance threshold
// (100 units) or the release velocity exceeds the velocity threshold
// (0.5 units/ms). Fast flicks use a reduced distance threshold of
// 0.6 × 100. Dragging toward a boundary is damped to 20% of the pointer
// travel.
//
// # Collaborators
//
// The controller has no compile-time dependency on any SDK. Haptic feedback
// is reported through the Haptics interface and failures are swallowed. The
// deferred index change goes through a Scheduler so the TUI can run it on its
// own event loop and tests can drive time by hand.
package deck
