// internal/game/engine.go
//
// Round engine for a single Wordle round.
// Responsibilities:
//   - Pick or validate the target word against a words.Dictionary.
//   - Hold the input buffer for the active row (append / remove last).
//   - Validate and score submitted guesses; keep the per-key best mark.
//   - Track state transitions: playing → won/lost, and notify listeners.
//
// Notes:
//   - The engine is single-threaded; callers drive it from one goroutine.
//   - Scoring is a containment check, not the two-pass budgeted algorithm:
//     a repeated guess letter is marked present for every occurrence as long
//     as the target contains it once.

package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

const defaultMaxAttempts = 5

// Options configures a round. Zero values select the defaults.
type Options struct {
	// Target fixes the answer. Empty picks one at random from the answer pool.
	Target string
	// MaxAttempts is the number of rows (default 5).
	MaxAttempts int
	// Alphabet is the keyboard alphabet (default: the dictionary's alphabet).
	Alphabet string
}

// Engine owns the state of one round.
type Engine struct {
	id          string
	dict        *words.Dictionary
	target      string
	length      int
	maxAttempts int
	alphabet    []rune

	input    []rune
	attempt  int
	keys     map[rune]Mark
	guesses  []Guess
	finished bool
	outcome  Outcome

	subs    []subscriber
	nextSub Subscription
}

// New validates the setup and starts a round.
// All returned errors are configuration errors; see the Err* values.
func New(dict *words.Dictionary, opts Options) (*Engine, error) {
	if dict == nil || dict.Len() == 0 || dict.AnswerCount() == 0 {
		return nil, ErrEmptyDictionary
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.MaxAttempts < 0 {
		return nil, fmt.Errorf("%w: max attempts %d", ErrInvalidOptions, opts.MaxAttempts)
	}
	if opts.Alphabet == "" {
		opts.Alphabet = dict.Alphabet()
	}
	alphabet := []rune(strings.ToLower(opts.Alphabet))

	target := strings.ToLower(strings.TrimSpace(opts.Target))
	if target == "" {
		target = dict.RandomAnswer()
	}
	if n := utf8.RuneCountInString(target); n != dict.Length() {
		return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrTargetLength, target, n, dict.Length())
	}
	for _, r := range target {
		if !containsRune(alphabet, r) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedTarget, target)
		}
	}
	if !dict.Contains(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetUnknown, target)
	}

	e := &Engine{
		id:          uuid.NewString(),
		dict:        dict,
		target:      target,
		length:      dict.Length(),
		maxAttempts: opts.MaxAttempts,
		alphabet:    alphabet,
		input:       make([]rune, 0, dict.Length()),
		keys:        make(map[rune]Mark, len(alphabet)),
	}
	for _, r := range alphabet {
		e.keys[r] = MarkUnknown
	}
	return e, nil
}

// AppendLetter adds r to the active row. Ignored when the round is over
// or the row is already full.
func (e *Engine) AppendLetter(r rune) {
	if e.finished || len(e.input) >= e.length {
		return
	}
	e.input = append(e.input, unicode.ToLower(r))
}

// RemoveLastLetter drops the last typed letter, if any.
func (e *Engine) RemoveLastLetter() {
	if e.finished || len(e.input) == 0 {
		return
	}
	e.input = e.input[:len(e.input)-1]
}

// SubmitGuess validates, scores and applies the active row.
//
// Validation failures (too short, not in the dictionary) notify
// InvalidSubmission and leave the row as typed. An accepted guess notifies
// GuessEvaluated before the win/loss decision, then RoundEnded if the round
// is over.
func (e *Engine) SubmitGuess() Result {
	if e.finished {
		return ResultIgnored
	}
	guess := string(e.input)
	if len(e.input) < e.length || !e.dict.Contains(guess) {
		e.notifyInvalid(guess)
		return ResultInvalid
	}

	marks := Score(guess, e.target)
	e.mergeKeys(guess, marks)
	e.input = e.input[:0]
	e.guesses = append(e.guesses, Guess{Word: guess, Marks: marks})
	e.notifyEvaluated(e.attempt, guess, marks)

	if guess == e.target {
		e.finish(StatusWon)
		return ResultWon
	}
	e.attempt++
	if e.attempt >= e.maxAttempts {
		e.finish(StatusLost)
		return ResultLost
	}
	return ResultContinue
}

func (e *Engine) finish(s Status) {
	e.finished = true
	e.outcome = Outcome{Status: s, Target: e.target}
	e.notifyEnded(e.outcome)
}

// mergeKeys upgrades keyboard state; a key never moves to a lower mark.
func (e *Engine) mergeKeys(guess string, marks []Mark) {
	i := 0
	for _, r := range guess {
		cur, tracked := e.keys[r]
		if tracked && marks[i].Outranks(cur) {
			e.keys[r] = marks[i]
		}
		i++
	}
}

// Score marks each guess letter against target.
//
//   - same letter at the same position → MarkHit
//   - letter appears anywhere in target → MarkPresent
//   - otherwise                          → MarkMiss
//
// There is no per-letter budget, so "eerie" against "apple" marks every
// non-matching 'e' present. Comparison is case-insensitive.
func Score(guess, target string) []Mark {
	g := []rune(strings.ToLower(guess))
	t := []rune(strings.ToLower(target))
	res := make([]Mark, len(g))
	for i, r := range g {
		switch {
		case i < len(t) && r == t[i]:
			res[i] = MarkHit
		case containsRune(t, r):
			res[i] = MarkPresent
		default:
			res[i] = MarkMiss
		}
	}
	return res
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// ID is a random identifier for correlating log lines of one round.
func (e *Engine) ID() string { return e.id }

// Input returns the letters typed on the active row.
func (e *Engine) Input() string { return string(e.input) }

// Attempt is the zero-based index of the active row.
func (e *Engine) Attempt() int { return e.attempt }

func (e *Engine) MaxAttempts() int { return e.maxAttempts }
func (e *Engine) WordLength() int  { return e.length }
func (e *Engine) Alphabet() string { return string(e.alphabet) }
func (e *Engine) Finished() bool   { return e.finished }

// Outcome returns the result once the round is over.
func (e *Engine) Outcome() (Outcome, bool) { return e.outcome, e.finished }

// KeyState returns the best mark seen so far for r.
func (e *Engine) KeyState(r rune) Mark { return e.keys[unicode.ToLower(r)] }

// KeyStates returns a copy of the keyboard state, one entry per alphabet letter.
func (e *Engine) KeyStates() map[rune]Mark {
	out := make(map[rune]Mark, len(e.keys))
	for k, v := range e.keys {
		out[k] = v
	}
	return out
}

// Guesses returns the accepted guesses in order.
func (e *Engine) Guesses() []Guess {
	out := make([]Guess, len(e.guesses))
	for i, g := range e.guesses {
		out[i] = Guess{Word: g.Word, Marks: append([]Mark(nil), g.Marks...)}
	}
	return out
}
