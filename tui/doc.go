// Package tui implements the terminal front panel using Bubble Tea.
//
// # Architecture
//
// The model holds no business logic of its own. Key presses are forwarded to
// the controller as commands and the view is rendered from the controller's
// state after every message.
//
// # Phases
//
//   - phaseSelfTest: the self-test progress bar, advanced by selfTestTickMsg
//   - phaseControl: temperature, state and transport mode, with key bindings
//
// # Ticking
//
// The model is the controller's periodic source. A controlTickMsg is
// scheduled with tea.Tick only while the controller is running, and at most
// one is in flight at a time:
//
//	key press  → command → schedule() → controlTickMsg
//	controlTickMsg → Tick() → schedule()
//
// Each tick carries a sequence number. When a lock halts the controller
// with a tick still pending, the number is bumped and that tick is
// dropped on arrival.
package tui
