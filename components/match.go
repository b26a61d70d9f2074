package components

import "github.com/yohamta/donburi"

// Outcome is the result of one simulation tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "WIN"
	case OutcomeLoss:
		return "LOSS"
	case OutcomeRemoved:
		return "REMOVED"
	}
	return "NONE"
}

// MatchData stores the running score. This is a singleton component - only
// one match exists at a time.
type MatchData struct {
	Wins        int
	Losses      int
	Practice    bool
	Rounds      int // resets so far, including unscored ones
	LastOutcome Outcome
	Poet        string
	Opponent    string
	Arena       string
}

var Match = donburi.NewComponentType[MatchData]()
