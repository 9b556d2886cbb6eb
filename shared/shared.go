package shared

type Event int

const (
	Quit Event = iota
	Transpose
	MajorScale
	MinorScale
	Circle
	Play
	Import
	Export
	Key
	Result
	Warning
	Error
)

// Message is the envelope exchanged between the front end and the dispatcher.
// The meaning of each field depends on Type:
//
//	Transpose   String: notes, Number/Number2: distance range, Boolean: qualified output
//	MajorScale  String: root note, Boolean: qualified output
//	MinorScale  String: root note, Boolean: qualified output
//	Circle      Boolean: minor circle
//	Play        String: notes, Number: bpm (0 for the configured one)
//	Import      String: file name (empty for the configured one)
//	Export      String: text (empty for the last result)
//	Key         String: root note then notes, Number: 1 for a minor key, Boolean: qualified output
//	Result      String: printed result, Number: note count
//	Warning     String: message
//	Error       String: err.Error()
type Message struct {
	Type    Event
	Number  int
	Boolean bool
	String  string
	Number2 int
}

var BPM = float64(120)

const DEFAULT_FILE = "Musicia.txt"

func (e Event) String() string {
	switch e {
	case Quit:
		return "quit"
	case Transpose:
		return "transpose"
	case MajorScale:
		return "major"
	case MinorScale:
		return "minor"
	case Circle:
		return "circle"
	case Play:
		return "play"
	case Import:
		return "import"
	case Export:
		return "export"
	case Key:
		return "key"
	case Result:
		return "result"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseEvent maps a command name back to its request event.
func ParseEvent(name string) (Event, bool) {
	for e := Quit; e <= Key; e++ {
		if e.String() == name {
			return e, true
		}
	}
	return Quit, false
}
