package music

import "fmt"

const (
	DefaultOctave    = 5
	HIGHEST_OCTAVE   = 10
	NOTES_PER_OCTAVE = 12
	NUM_NOTES        = 128
)

// Note is an immutable pitch spelling with an octave and a duration.
// Middle C is C5, the range goes from C0 up to G10.
type Note struct {
	name     Name
	octave   int
	duration Duration
}

// NewNote builds a note from a letter [A-G] and an accidental ("", "#", "b").
func NewNote(letter, accidental string, octave int, d Duration) (Note, error) {
	name, err := LookupName(letter, accidental)
	if err != nil {
		return Note{}, err
	}
	return NoteOf(name, octave, d)
}

// NoteOf builds a note from an already resolved name. A zero duration means a quarter.
func NoteOf(name Name, octave int, d Duration) (Note, error) {
	if !name.valid() {
		return Note{}, fmt.Errorf("%w: unknown note name %d", ErrInvalidArgument, int(name))
	}
	if octave < 0 || octave > HIGHEST_OCTAVE {
		return Note{}, fmt.Errorf("%w: octave [%d] out of range [0,%d]", ErrInvalidArgument, octave, HIGHEST_OCTAVE)
	}
	if octave*NOTES_PER_OCTAVE+name.Semitone() >= NUM_NOTES {
		return Note{}, fmt.Errorf("%w: the note [%s%d] exceeds the range of supported notes", ErrInvalidArgument, name, octave)
	}
	if d.IsZero() {
		d = Quarter
	}
	return Note{name: name, octave: octave, duration: d}, nil
}

func (n Note) Name() Name {
	return n.name
}

func (n Note) Letter() string {
	return n.name.Letter()
}

func (n Note) Accidental() Accidental {
	return n.name.Accidental()
}

// FullName is the letter plus accidental, e.g. "C#".
func (n Note) FullName() string {
	return n.name.String()
}

func (n Note) Octave() int {
	return n.octave
}

func (n Note) Duration() Duration {
	if n.duration.IsZero() {
		return Quarter
	}
	return n.duration
}

func (n Note) HasAccidental() bool {
	return n.name.Accidental() != Natural
}

func (n Note) IsSharp() bool {
	return n.name.Accidental() == Sharp
}

func (n Note) IsFlat() bool {
	return n.name.Accidental() == Flat
}

// Key is the absolute position of the note, 0 for C0 up to 127 for G10.
// Enharmonic spellings share the same key.
func (n Note) Key() int {
	return n.octave*NOTES_PER_OCTAVE + n.name.Semitone()
}

// Equal compares name, octave and duration.
func (n Note) Equal(o Note) bool {
	return n.EqualName(o) && n.EqualProperties(o)
}

// EqualName ignores octave and duration.
func (n Note) EqualName(o Note) bool {
	return n.name == o.name
}

// EqualProperties compares octave and duration only.
func (n Note) EqualProperties(o Note) bool {
	return n.octave == o.octave && n.Duration() == o.Duration()
}

// Equivalent returns the other spelling of an accidental note (C# <-> Db)
// at the same octave and duration. Notes without accidental are returned as is.
func (n Note) Equivalent() (Note, error) {
	name, err := n.name.Equivalent()
	if err != nil {
		return n, fmt.Errorf("%w (note %s)", err, n)
	}
	n.name = name
	return n, nil
}

// InOctave returns the same spelling moved to another octave.
func (n Note) InOctave(octave int) (Note, error) {
	return NoteOf(n.name, octave, n.Duration())
}

func (n Note) WithDuration(d Duration) Note {
	if d.IsZero() {
		d = Quarter
	}
	n.duration = d
	return n
}

// String gives name, octave and duration code, e.g. "C#5q".
func (n Note) String() string {
	return n.name.String() + fmt.Sprint(n.octave) + n.Duration().Code()
}
