package game

// EventKind distinguishes a quit request from a key press.
type EventKind int

const (
	EventKey EventKind = iota
	EventQuit
)

// Key is a key the game reacts to. Backends translate their own key codes
// into these.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyGrow
)

type Event struct {
	Kind EventKind
	Key  Key
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}
