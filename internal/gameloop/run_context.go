package gameloop

// RunContext - decides whether the loop may take another turn.
type RunContext interface {
	Run() bool
}

type forever struct{}

func (forever) Run() bool {
	return true
}

// Forever - never stops the loop; the outcome or the move source does.
func Forever() RunContext {
	return forever{}
}

// TurnLimit - allows a fixed number of turns.
type TurnLimit struct {
	remaining int
}

func NewTurnLimit(turns int) *TurnLimit {
	return &TurnLimit{remaining: turns}
}

func (that *TurnLimit) Run() bool {
	if that.remaining <= 0 {
		return false
	}

	that.remaining--
	return true
}
