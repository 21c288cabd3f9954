package game

import (
	"github.com/rs/zerolog"
)

// Listener receives round notifications. Calls are synchronous and happen
// on the goroutine that drives the engine.
type Listener interface {
	// InvalidSubmission fires when a submitted row is too short or not a word.
	InvalidSubmission(input string)
	// GuessEvaluated fires for every accepted guess, before the round
	// continues or ends.
	GuessEvaluated(attempt int, guess string, marks []Mark)
	// RoundEnded fires once, when the round is won or lost.
	RoundEnded(o Outcome)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnInvalid   func(input string)
	OnEvaluated func(attempt int, guess string, marks []Mark)
	OnEnd       func(o Outcome)
}

func (f ListenerFuncs) InvalidSubmission(input string) {
	if f.OnInvalid != nil {
		f.OnInvalid(input)
	}
}

func (f ListenerFuncs) GuessEvaluated(attempt int, guess string, marks []Mark) {
	if f.OnEvaluated != nil {
		f.OnEvaluated(attempt, guess, marks)
	}
}

func (f ListenerFuncs) RoundEnded(o Outcome) {
	if f.OnEnd != nil {
		f.OnEnd(o)
	}
}

// Subscription identifies a registered listener.
type Subscription int

type subscriber struct {
	id Subscription
	l  Listener
}

// Subscribe registers l and returns a handle for Unsubscribe.
func (e *Engine) Subscribe(l Listener) Subscription {
	e.nextSub++
	e.subs = append(e.subs, subscriber{id: e.nextSub, l: l})
	return e.nextSub
}

// Unsubscribe removes a listener. Unknown handles are ignored.
func (e *Engine) Unsubscribe(s Subscription) {
	for i, sub := range e.subs {
		if sub.id == s {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// snapshot lets listeners unsubscribe while being notified.
func (e *Engine) snapshot() []subscriber {
	return append([]subscriber(nil), e.subs...)
}

func (e *Engine) notifyInvalid(input string) {
	for _, s := range e.snapshot() {
		s.l.InvalidSubmission(input)
	}
}

func (e *Engine) notifyEvaluated(attempt int, guess string, marks []Mark) {
	for _, s := range e.snapshot() {
		s.l.GuessEvaluated(attempt, guess, append([]Mark(nil), marks...))
	}
}

func (e *Engine) notifyEnded(o Outcome) {
	for _, s := range e.snapshot() {
		s.l.RoundEnded(o)
	}
}

// NewLogListener logs round events at debug/info level, tagged with the round ID.
func NewLogListener(e *Engine, logger zerolog.Logger) Listener {
	l := logger.With().Str("round", e.ID()).Logger()
	return ListenerFuncs{
		OnInvalid: func(input string) {
			l.Debug().Str("input", input).Msg("guess rejected")
		},
		OnEvaluated: func(attempt int, guess string, marks []Mark) {
			arr := zerolog.Arr()
			for _, m := range marks {
				arr.Str(m.String())
			}
			l.Debug().Int("attempt", attempt).Str("guess", guess).Array("marks", arr).Msg("guess scored")
		},
		OnEnd: func(o Outcome) {
			l.Info().Str("status", string(o.Status)).Str("target", o.Target).Msg("round over")
		},
	}
}
