package music

import "fmt"

// chromatic order of one octave, sharp spelling only
var chromatic = [NOTES_PER_OCTAVE]Name{C, Csharp, D, Dsharp, E, F, Fsharp, G, Gsharp, A, Asharp, B}

// Order is the absolute order of the 128 supported notes, C0 to G10.
// CAUTION: it only holds sharp spellings. It is read-only once built.
type Order struct {
	notes [NUM_NOTES]Note
}

func NewOrder() *Order {
	o := &Order{}
	i := 0
	for octave := 0; octave <= HIGHEST_OCTAVE; octave++ {
		for _, name := range chromatic {
			if i == NUM_NOTES {
				break // octave 10 stops at G
			}
			o.notes[i] = Note{name: name, octave: octave, duration: Quarter}
			i++
		}
	}
	return o
}

func (o *Order) Len() int {
	return len(o.notes)
}

func exceedsRange(index int) bool {
	return index < 0 || index >= NUM_NOTES
}

// IndexOf returns the position of the note. Flat notes are resolved to their
// sharp equivalent first, so at most 12 entries of the note's octave are scanned.
func (o *Order) IndexOf(n Note) (int, error) {
	if n.IsFlat() {
		eq, err := n.Equivalent()
		if err != nil {
			return -1, err
		}
		n = eq
	}
	start := NOTES_PER_OCTAVE * n.Octave()
	for i := start; i < start+NOTES_PER_OCTAVE && i < NUM_NOTES; i++ {
		if i >= 0 && o.notes[i].EqualName(n) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: the note [%s] is invalid", ErrInvalidArgument, n)
}

func (o *Order) NoteAt(index int) (Note, error) {
	if exceedsRange(index) {
		return Note{}, fmt.Errorf("%w: the index [%d] exceeds the range of supported notes", ErrInvalidArgument, index)
	}
	return o.notes[index], nil
}

// Transpose moves the note by distance semitones (negative goes down).
// The result is sharp spelled and keeps the duration of n.
func (o *Order) Transpose(n Note, distance int) (Note, error) {
	index, err := o.IndexOf(n)
	if err != nil {
		return Note{}, err
	}
	if exceedsRange(index + distance) {
		return Note{}, fmt.Errorf("%w: the transposition of the note [%s] by [%d] exceeds the range of supported notes", ErrInvalidArgument, n, distance)
	}
	return o.notes[index+distance].WithDuration(n.Duration()), nil
}

// Predecessor is the note a half tone below.
func (o *Order) Predecessor(n Note) (Note, error) {
	return o.Transpose(n, -1)
}

// Successor is the note a half tone above.
func (o *Order) Successor(n Note) (Note, error) {
	return o.Transpose(n, 1)
}
