// Package scroll measures a header strip against its viewport and drives
// scrolling along one axis.
//
// Allowed here:
// - overflow math, scroll targets, smooth stepping
// - frame coalescing for geometry recomputation and animation
//
// Not allowed here:
// - tab selection policy, rendering, key handling
package scroll
