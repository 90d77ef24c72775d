package entity

type Status uint8

const (
	StatusOngoing Status = iota
	StatusWon
	StatusTied
)

// Outcome is derived from the board after every move and never stored on its own.
type Outcome struct {
	Status Status
	Winner Player
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(player Player) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Tied() Outcome {
	return Outcome{Status: StatusTied}
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return "won by " + that.Winner.String()
	case StatusTied:
		return "tied"
	default:
		return "ongoing"
	}
}
