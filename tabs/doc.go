// Package tabs implements a tab group component for Bubble Tea programs.
//
// A Group owns the selection for its Tab and Panel children. Tabs name the
// panel they control; the group is the only writer of either side's active
// flag, so at most one tab and one panel are active at any time and both
// carry the group's active name.
//
// Selection changes are two-phase. Show (or a click, or keyboard
// navigation) runs the cancelable tab-before-hide and tab-before-show
// listeners synchronously and applies the new state. The returned command
// settles on the next loop iteration, after the new state has been
// rendered: the active tab is scrolled into view and tab-hide then
// tab-show are confirmed, both to listeners registered with On and as
// HideMsg and ShowMsg. Several changes made before a settle confirm once,
// from the first origin to the last target.
//
// Allowed here:
//   - selection state, keyboard navigation and focus for one group
//   - strip geometry, scroll buttons and smooth scrolling of the strip
//   - rendering the strip and the active panel
//
// Not allowed here:
//   - persistence of the selection (the embedder listens for ShowMsg)
//   - removing tabs on close requests (CloseMsg is only a request)
package tabs
