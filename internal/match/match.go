// Package match tracks match lifecycle metadata: who is playing, how long,
// how many moves were accepted, and how the match ended. It is deliberately
// independent of both the rules engine and the storage layer; the platform
// glues the three together.
package match

import (
	"time"
)

// Mode identifies where a match is being played.
type Mode string

const (
	ModeLocal Mode = "local" // Local terminal, two players at one keyboard
	ModeSSH   Mode = "ssh"   // Remote terminal session via the SSH server
)

// Outcome of a finished match.
const (
	OutcomeWhite = "white"
	OutcomeBlack = "black"
	OutcomeDraw  = "draw"
)

// End reasons.
const (
	EndCompleted = "completed" // The game-over condition was reached
	EndAbandoned = "abandoned" // The player left or restarted mid-game
)

// Result is the final record of a match, ready for persistence.
type Result struct {
	Mode         Mode
	Session      string
	WhiteScore   int
	BlackScore   int
	Outcome      string
	EndReason    string
	Moves        int
	DurationSecs int
}

// Saver persists match results. Implemented by the storage layer; kept as
// an interface here so this package stays storage-free.
type Saver interface {
	SaveResult(res Result) error
}

// Match is the bookkeeping for one game in progress.
type Match struct {
	mode      Mode
	session   string
	startedAt time.Time
	moves     int
}

// New starts tracking a match. session is the SSH user for remote play,
// empty for local play.
func New(mode Mode, session string) *Match {
	return &Match{
		mode:      mode,
		session:   session,
		startedAt: time.Now(),
	}
}

// RecordMove counts one accepted move. Rejected clicks are not recorded.
func (m *Match) RecordMove() {
	m.moves++
}

// Moves returns the number of accepted moves so far.
func (m *Match) Moves() int {
	return m.moves
}

// Mode returns where this match is played.
func (m *Match) Mode() Mode {
	return m.mode
}

// Finish builds the final result from the last observed scores.
// completed distinguishes a reached game-over from an abandoned game.
func (m *Match) Finish(whiteScore, blackScore uint8, completed bool) Result {
	outcome := OutcomeDraw
	switch {
	case whiteScore > blackScore:
		outcome = OutcomeWhite
	case blackScore > whiteScore:
		outcome = OutcomeBlack
	}

	endReason := EndAbandoned
	if completed {
		endReason = EndCompleted
	}

	return Result{
		Mode:         m.mode,
		Session:      m.session,
		WhiteScore:   int(whiteScore),
		BlackScore:   int(blackScore),
		Outcome:      outcome,
		EndReason:    endReason,
		Moves:        m.moves,
		DurationSecs: int(time.Since(m.startedAt) / time.Second),
	}
}
