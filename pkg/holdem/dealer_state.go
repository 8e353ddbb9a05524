package holdem

// DealerState is the state of the dealer within a hand
type DealerState int

// DealerState constants
const (
	DealerStateStart DealerState = iota
	DealerStatePreFlopBetting
	DealerStateFlopBetting
	DealerStateTurnBetting
	DealerStateRiverBetting
	DealerStateShowdown
	DealerStateDone
)

func (d DealerState) String() string {
	switch d {
	case DealerStateStart:
		return "start"
	case DealerStatePreFlopBetting:
		return "pre-flop"
	case DealerStateFlopBetting:
		return "flop"
	case DealerStateTurnBetting:
		return "turn"
	case DealerStateRiverBetting:
		return "river"
	case DealerStateShowdown:
		return "showdown"
	case DealerStateDone:
		return "done"
	}

	panic("unknown dealer state")
}
