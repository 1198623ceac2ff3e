// Package shape constructs and updates layer records from pointer
// geometry. A Factory turns a tool's anchor point into a zero-sized
// layer styled from the current drawing style, drag updates grow the
// geometry as the pointer moves, and HasValidSize gates out accidental
// zero-area shapes when the gesture ends.
package shape
