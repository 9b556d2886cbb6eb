package scales

import "github.com/JeanRibes/musicia/music"

const (
	FIFTH = 7
	// entries 0..6 of a circle are the sharp side, the rest the flat side
	RIGHT_HALF = 7
	CIRCLE_LEN = music.NOTES_PER_OCTAVE + 1
)

// Circle holds the major (from C) and minor (from A) circles of fifths.
// All notes are in octave 5. The pivot of each circle appears twice, once
// per spelling (F# and Gb for major, D# and Eb for minor), so both circles
// have 13 entries.
type Circle struct {
	major []music.Note
	minor []music.Note
}

func NewCircle(order *music.Order) (*Circle, error) {
	c5, err := music.NoteOf(music.C, music.DefaultOctave, music.Quarter)
	if err != nil {
		return nil, err
	}
	a5, err := music.NoteOf(music.A, music.DefaultOctave, music.Quarter)
	if err != nil {
		return nil, err
	}
	major, err := buildCircle(order, c5)
	if err != nil {
		return nil, err
	}
	minor, err := buildCircle(order, a5)
	if err != nil {
		return nil, err
	}
	return &Circle{major: major, minor: minor}, nil
}

func buildCircle(order *music.Order, root music.Note) ([]music.Note, error) {
	half := music.NOTES_PER_OCTAVE / 2
	right := make([]music.Note, 0, RIGHT_HALF)
	left := make([]music.Note, 0, half)

	current := root
	for i := 0; i < music.NOTES_PER_OCTAVE; i++ {
		if i <= half {
			right = append(right, current)
		}
		if i >= half {
			eq, err := current.Equivalent()
			if err != nil {
				return nil, err
			}
			left = append(left, eq)
		}
		next, err := order.Transpose(current, FIFTH)
		if err != nil {
			return nil, err
		}
		// a fifth up may leave the octave, pin it back
		if current, err = next.InOctave(root.Octave()); err != nil {
			return nil, err
		}
	}
	return append(right, left...), nil
}

// Major is C G D A E B F# | Gb Db Ab Eb Bb F.
func (c *Circle) Major() []music.Note {
	return append([]music.Note(nil), c.major...)
}

// Minor is A E B F# C# G# D# | Eb Bb F C G D.
func (c *Circle) Minor() []music.Note {
	return append([]music.Note(nil), c.minor...)
}
