// Package crossword implements the crossword payload of a TGG container.
//
// A Puzzle holds a width × height grid of boxes and two ordered clue lists
// (horizontal and vertical). Each box carries a number (0 for unnumbered)
// and a value: empty, solid, or an uppercase ASCII letter. Clue numbers
// refer to grid numbers.
//
// # Payload Format
//
//	[width(1)][height(1)][total clues(1)]
//	{[number(1)][text][0x00]}* [0x00]     horizontal clues
//	{[number(1)][text][0x00]}* [0x00]     vertical clues
//	{[number(1)][value(1)]} * width*height
//
// Box values encode as 0x20 (empty), 0x23 (solid) or the letter itself.
//
// # Validation
//
// New and Decode share one Validate routine. A decoded puzzle therefore
// meets the same guarantees as a constructed one: matching dimensions,
// unique grid numbers, clues that point at existing numbers, and no
// duplicate clue numbers within a direction.
package crossword
