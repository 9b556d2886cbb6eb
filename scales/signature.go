package scales

import (
	"github.com/JeanRibes/musicia/music"
)

// Signature maps a letter to the altered name the scale uses for it:
// B → Bb in F major, F → F# and C → C# in D major.
// Letters the scale also uses as naturals are left out.
func (s *Scale) Signature() (map[string]music.Name, error) {
	notes, err := s.Notes()
	if err != nil {
		return nil, err
	}
	naturals := map[string]bool{}
	for _, n := range notes {
		if !n.HasAccidental() {
			naturals[n.Letter()] = true
		}
	}
	sig := map[string]music.Name{}
	for _, n := range notes {
		if n.HasAccidental() && !naturals[n.Letter()] {
			sig[n.Letter()] = n.Name()
		}
	}
	return sig, nil
}

// Conform lets one type naturals and get them spelled in the key of the scale:
// in F major, B5 becomes Bb5. Notes written with an accidental are kept.
func (s *Scale) Conform(notes []music.Note) ([]music.Note, error) {
	sig, err := s.Signature()
	if err != nil {
		return nil, err
	}
	out := make([]music.Note, 0, len(notes))
	for _, n := range notes {
		name, ok := sig[n.Letter()]
		if n.HasAccidental() || !ok {
			out = append(out, n)
			continue
		}
		altered, err := music.NoteOf(name, n.Octave(), n.Duration())
		if err != nil {
			return nil, err
		}
		out = append(out, altered)
	}
	return out, nil
}
