package bookshelf

// Class is the rendering class of an object.
type Class int

const (
	// Cell objects are drawn as points in aggregate mode.
	Cell Class = iota
	// Terminal objects are drawn as rectangles and define the bounds.
	Terminal
)

// String returns "terminal" or "cell".
func (c Class) String() string {
	if c == Terminal {
		return "terminal"
	}
	return "cell"
}

// Classify decides the class of a record. Marked records (terminal in the
// node file, FIXED in the placement file) are always terminals; in detail
// mode every record is.
func Classify(marked, detail bool) Class {
	if marked || detail {
		return Terminal
	}
	return Cell
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(b []byte) error {
	if string(b) == "terminal" {
		*c = Terminal
	} else {
		*c = Cell
	}
	return nil
}
