package tui

// state is the preference axis being edited.
type state int

const (
	modeState state = iota
	schemeState
	designState
)

var states = []state{modeState, schemeState, designState}

func (s state) String() string {
	switch s {
	case modeState:
		return "Mode"
	case schemeState:
		return "Color Scheme"
	case designState:
		return "UI Design"
	default:
		return "Unknown"
	}
}

func (s state) next() state {
	return states[(int(s)+1)%len(states)]
}

func (s state) prev() state {
	return states[(int(s)+len(states)-1)%len(states)]
}
