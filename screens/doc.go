// Package screens contains overlay flows rendered on top of the tab group.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (tab picker, command palette)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - tab selection state, which the group owns
package screens
