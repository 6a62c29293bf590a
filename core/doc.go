// Package core is the application shell that hosts a tab group.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the tab finder state machine used by the picker screen
// - reacting to tab confirmations (status, persistence, honoring close requests)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - tab selection policy, which belongs to package tabs
package core
