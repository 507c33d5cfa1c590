package obj

// Key identifies the keys the level reacts to.
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyUp
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	}
	return "unknown"
}

// Event is an input event forwarded by the application loop.
type Event interface {
	isEvent()
}

// KeyDown is sent for every key press, including key repeats.
type KeyDown struct {
	Key Key
}

// PointerDown is a pointer button press at screen position X, Y.
type PointerDown struct {
	X, Y int
}

func (KeyDown) isEvent()     {}
func (PointerDown) isEvent() {}
