package music

import "fmt"

// Duration is a rhythmic value, held both as a fraction of a whole note and
// as its short code ("q" for a quarter, "h." for a dotted half).
type Duration struct {
	fraction float64
	code     string
}

// Quarter is the default duration of a note.
var Quarter = Duration{fraction: 0.25, code: "q"}

func (d Duration) Fraction() float64 {
	return d.fraction
}

func (d Duration) Code() string {
	return d.code
}

func (d Duration) String() string {
	return d.code
}

func (d Duration) IsZero() bool {
	return d.code == ""
}

const NUM_DURATIONS = 15

// DurationTable maps the supported duration codes to their fractions and back.
// It is filled once by NewDurationTable and only read afterwards.
type DurationTable struct {
	byCode     map[string]float64
	byFraction map[float64]string
	ordered    []Duration
}

func NewDurationTable() *DurationTable {
	t := &DurationTable{
		byCode:     make(map[string]float64, NUM_DURATIONS),
		byFraction: make(map[float64]string, NUM_DURATIONS),
		ordered:    make([]Duration, 0, NUM_DURATIONS),
	}
	// whole note down to 1/128, each followed by its dotted value
	fraction := 1.0
	for _, code := range []string{"w", "h", "q", "i", "s", "t", "x", "o"} {
		if code != "w" {
			t.add(code+".", fraction*1.5)
		}
		t.add(code, fraction)
		fraction /= 2
	}
	return t
}

func (t *DurationTable) add(code string, fraction float64) {
	t.byCode[code] = fraction
	t.byFraction[fraction] = code
	t.ordered = append(t.ordered, Duration{fraction: fraction, code: code})
}

// ByCode looks a duration up by its code, e.g. "q" or "h.".
func (t *DurationTable) ByCode(code string) (Duration, error) {
	if f, ok := t.byCode[code]; ok {
		return Duration{fraction: f, code: code}, nil
	}
	return Duration{}, fmt.Errorf("%w: the note duration [%s] is not supported", ErrInvalidArgument, code)
}

// ByFraction looks a duration up by its fraction of a whole note, e.g. 0.25.
func (t *DurationTable) ByFraction(f float64) (Duration, error) {
	if code, ok := t.byFraction[f]; ok {
		return Duration{fraction: f, code: code}, nil
	}
	return Duration{}, fmt.Errorf("%w: the note duration [%v] is not supported", ErrInvalidArgument, f)
}

// ByDenominator looks a plain duration up by the denominator of its
// fraction, 4 being a quarter note.
func (t *DurationTable) ByDenominator(denominator int) (Duration, error) {
	if denominator <= 0 {
		return Duration{}, fmt.Errorf("%w: the note duration [1/%d] is not supported", ErrInvalidArgument, denominator)
	}
	return t.ByFraction(1.0 / float64(denominator))
}

// All returns the supported durations from the longest to the shortest.
func (t *DurationTable) All() []Duration {
	return append([]Duration(nil), t.ordered...)
}
