// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (text blocks, pane chrome, stacks,
//   popup overlay compositor)
//
// Not allowed here:
// - key handling, selection state, focus policy, or scroll math
package widgets
