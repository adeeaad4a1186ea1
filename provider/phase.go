package provider

// Phase is the lifecycle position of a Provider.
type Phase int

const (
	Uninitialized Phase = iota
	Hydrating
	Ready
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Hydrating:
		return "hydrating"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}
