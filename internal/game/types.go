// internal/game/types.go
//
// Core type definitions for the round engine.
// Defines:
//   - Mark: per-letter verdict of a guess (hit/present/miss) and the key ranking.
//   - Guess: an accepted attempt together with its marks.
//   - Outcome / Result: how a round ended and what a submission did.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "miss":    letter does not exist in the target at all.
//   - "":        letter not yet seen this round (keyboard state only).
type Mark string

const (
	MarkUnknown Mark = ""
	MarkMiss    Mark = "miss"
	MarkPresent Mark = "present"
	MarkHit     Mark = "hit"
)

// rank orders marks for keyboard state: hit > present > miss > unknown.
func (m Mark) rank() int {
	switch m {
	case MarkHit:
		return 3
	case MarkPresent:
		return 2
	case MarkMiss:
		return 1
	}
	return 0
}

// Outranks reports whether m has strictly higher priority than other.
func (m Mark) Outranks(other Mark) bool { return m.rank() > other.rank() }

// String returns "unknown" for the zero value so logs stay readable.
func (m Mark) String() string {
	if m == MarkUnknown {
		return "unknown"
	}
	return string(m)
}

// Guess is one accepted attempt.
type Guess struct {
	Word  string
	Marks []Mark
}

// Status is the terminal state of a round.
type Status string

const (
	StatusWon  Status = "won"
	StatusLost Status = "lost"
)

// Outcome is produced exactly once per round.
type Outcome struct {
	Status Status
	Target string
}

// Won is shorthand for o.Status == StatusWon.
func (o Outcome) Won() bool { return o.Status == StatusWon }

// Result reports what SubmitGuess did with the current input.
type Result int

const (
	// ResultIgnored: the round was already over.
	ResultIgnored Result = iota
	// ResultInvalid: too short or not in the dictionary; input kept.
	ResultInvalid
	// ResultContinue: accepted, the round moves to the next row.
	ResultContinue
	ResultWon
	ResultLost
)

func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultInvalid:
		return "invalid"
	case ResultContinue:
		return "continue"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	}
	return "unknown"
}

// Setup errors returned by New. A round that fails any of these never starts.
var (
	ErrEmptyDictionary = errors.New("game: dictionary has no words")
	ErrInvalidOptions  = errors.New("game: invalid options")
	ErrTargetLength    = errors.New("game: target length does not match word length")
	ErrMalformedTarget = errors.New("game: target contains letters outside the alphabet")
	ErrTargetUnknown   = errors.New("game: target is not in the dictionary")
)
