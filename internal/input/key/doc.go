// Package key defines keyboard input events and key sequences.
//
// An Event is one discrete input: a printable character, a modifier chord
// such as Ctrl-G, a named key such as an arrow or PageUp, or the KeyNone
// idle sentinel emitted when the keyboard poll interval elapses without
// input. Events are plain comparable values.
//
// A Sequence accumulates events typed since the last resolved binding and
// is the unit of lookup for the keymap resolver.
//
// The package also parses human-readable key specifications ("C-x C-c",
// "A-g", "Enter") used by binding tables and configuration files.
package key
