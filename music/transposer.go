package music

import "errors"

// Transposer moves a list of notes by one or more distances.
type Transposer struct {
	order      *Order
	notes      []Note
	transposed []Note
}

func NewTransposer(order *Order, notes ...Note) *Transposer {
	return &Transposer{
		order: order,
		notes: append([]Note(nil), notes...),
	}
}

func (t *Transposer) SetNotes(notes []Note) {
	t.notes = append(t.notes[:0:0], notes...)
}

func (t *Transposer) TransposeNote(n Note, distance int) (Note, error) {
	return t.order.Transpose(n, distance)
}

// TransposeAll transposes every note by every distance. The result is grouped
// by distance: all notes moved by distances[0], then by distances[1], and so on.
// Every failing transposition is reported; the result then only holds the
// notes that could be moved.
func (t *Transposer) TransposeAll(distances []int) ([]Note, error) {
	out := make([]Note, 0, len(distances)*len(t.notes))
	var errs error
	for _, distance := range distances {
		for _, n := range t.notes {
			tn, err := t.order.Transpose(n, distance)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			out = append(out, tn)
		}
	}
	t.transposed = out
	return append([]Note(nil), out...), errs
}

// Transposed returns the result of the last TransposeAll.
func (t *Transposer) Transposed() []Note {
	return append([]Note(nil), t.transposed...)
}

// Range lists the distances from..to, both included.
func Range(from, to int) []int {
	if to < from {
		return nil
	}
	distances := make([]int, 0, to-from+1)
	for d := from; d <= to; d++ {
		distances = append(distances, d)
	}
	return distances
}
