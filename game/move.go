package game

// Action appends a single symbol to the prefix
type Action rune

// NoAction is returned alongside the value of a terminal state
const NoAction Action = 0

func (a Action) String() string {
	if a == NoAction {
		return "<none>"
	}
	return string(a)
}

// IsSymbol reports whether the action belongs to the alphabet.
func (a Action) IsSymbol() bool {
	return (a >= 'a' && a <= 'z') || a == '\''
}
