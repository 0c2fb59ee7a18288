// Package todo holds the in-memory task list shown next to the clock.
//
// List is safe for concurrent use: the UI adds, edits and toggles tasks on the
// Bubble Tea goroutine while the clock engine credits elapsed seconds to the
// selected task from its ticker goroutine. Readers get cloned slices, never
// the backing array.
//
// Behaviour carried over from the original browser page:
//
//   - New tasks go to the top of the list.
//   - Completed tasks cannot be edited until they are unchecked.
//
// The list is not persisted; it lives as long as the process.
package todo
