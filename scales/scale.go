package scales

import (
	"fmt"

	"github.com/JeanRibes/musicia/music"
)

const NOTES_PER_SCALE = 8

// Variant describes a kind of scale: its steps in semitones and the circle
// of fifths that decides between sharp and flat spelling.
type Variant struct {
	Name       string
	Pattern    [NOTES_PER_SCALE - 1]int
	UsesCircle bool
	Circle     func(*Circle) []music.Note
}

var (
	Major = Variant{
		Name:       "major",
		Pattern:    [7]int{2, 2, 1, 2, 2, 2, 1},
		UsesCircle: true,
		Circle:     (*Circle).Major,
	}
	Minor = Variant{
		Name:       "minor",
		Pattern:    [7]int{2, 1, 2, 2, 1, 2, 2},
		UsesCircle: true,
		Circle:     (*Circle).Minor,
	}
)

// Scale is the 8 notes of a variant from a root note, root and octave included.
// The notes are computed on first use and kept.
type Scale struct {
	root    music.Note
	variant Variant
	order   *music.Order
	circle  *Circle
	notes   []music.Note
}

func New(root music.Note, variant Variant, order *music.Order, circle *Circle) *Scale {
	return &Scale{
		root:    root,
		variant: variant,
		order:   order,
		circle:  circle,
	}
}

func NewMajor(root music.Note, order *music.Order, circle *Circle) *Scale {
	return New(root, Major, order, circle)
}

func NewMinor(root music.Note, order *music.Order, circle *Circle) *Scale {
	return New(root, Minor, order, circle)
}

func (s *Scale) Root() music.Note {
	return s.root
}

func (s *Scale) Variant() Variant {
	return s.variant
}

// Notes returns the scale, e.g. C D E F G A B C6 for C major.
func (s *Scale) Notes() ([]music.Note, error) {
	if s.notes == nil {
		notes, err := s.build()
		if err != nil {
			return nil, err
		}
		s.notes = notes
	}
	return append([]music.Note(nil), s.notes...), nil
}

// Get returns the note at a 1-based position (1 to 8).
func (s *Scale) Get(position int) (music.Note, error) {
	if position < 1 || position > NOTES_PER_SCALE {
		return music.Note{}, fmt.Errorf("%w: scale position [%d] out of range [1,%d]", music.ErrInvalidArgument, position, NOTES_PER_SCALE)
	}
	notes, err := s.Notes()
	if err != nil {
		return music.Note{}, err
	}
	return notes[position-1], nil
}

func (s *Scale) build() ([]music.Note, error) {
	if !s.variant.UsesCircle || s.variant.Circle == nil {
		return nil, fmt.Errorf("%w: %s scales cannot be computed without the circle of fifths", music.ErrUnsupportedOperation, s.variant.Name)
	}
	start, err := s.order.IndexOf(s.root)
	if err != nil {
		return nil, err
	}
	flat, err := s.flatSpelling(s.variant.Circle(s.circle))
	if err != nil {
		return nil, err
	}

	notes := make([]music.Note, 0, NOTES_PER_SCALE)
	index := start
	for i := 0; i < NOTES_PER_SCALE; i++ {
		if i > 0 {
			index += s.variant.Pattern[i-1]
		}
		n, err := s.order.NoteAt(index)
		if err != nil {
			return nil, fmt.Errorf("%s %s scale: %w", s.root.FullName(), s.variant.Name, err)
		}
		if flat {
			if n, err = n.Equivalent(); err != nil {
				return nil, err
			}
		}
		notes = append(notes, n.WithDuration(s.root.Duration()))
	}
	return notes, nil
}

// flatSpelling finds the root on the circle. Found as is on the sharp side or
// through its equivalent on the flat side, the scale is sharp; the other two
// cases are flat.
func (s *Scale) flatSpelling(circle []music.Note) (bool, error) {
	for i, entry := range circle {
		eq, err := entry.Equivalent()
		if err != nil {
			return false, err
		}
		sharpSide := i < RIGHT_HALF
		switch {
		case s.root.EqualName(entry):
			return !sharpSide, nil
		case s.root.EqualName(eq):
			return sharpSide, nil
		}
	}
	return false, fmt.Errorf("%w: the note [%s] is not on the circle of fifths", music.ErrInvalidArgument, s.root)
}
