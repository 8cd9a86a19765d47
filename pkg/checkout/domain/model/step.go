package model

type Step int

const (
	Shipping Step = iota + 1
	Billing
	Payment
	Review
	Placed
)

func (s Step) String() string {
	switch s {
	case Shipping:
		return "shipping"
	case Billing:
		return "billing"
	case Payment:
		return "payment"
	case Review:
		return "review"
	case Placed:
		return "placed"
	default:
		return "unknown"
	}
}

func (s Step) IsTerminal() bool {
	return s == Placed
}

type Action int

const (
	ActionNext Action = iota
	ActionBack
	ActionPlace
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionBack:
		return "back"
	case ActionPlace:
		return "place"
	default:
		return "unknown"
	}
}
