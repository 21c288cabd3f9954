// internal/words/words.go
//
// Provides word list management for the round engine.
//
// Responsibilities:
//   - Build an immutable Dictionary of fixed-length words (answers ∪ allowed).
//   - Load lists from a SQLite word database, plain text files, or the
//     embedded defaults in the assets package.
//   - Supply utilities like RandomAnswer, Contains, IsAnswer and Suggest.
//
// Word Lists:
//   - "answers": words a round may pick as its target.
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If Source.DB is set, read both lists from that SQLite database.
//   2. If AnswersFile and AllowedFile are both set, load each from its file.
//      If only AllowedFile is set, use that file for both lists; if only
//      AnswersFile is set, there are no extra guesses.
//   3. Otherwise fall back to the embedded assets lists.
//
// Constraints:
//   • Words must be Length letters drawn from the alphabet.
//   • Lists are normalized to lowercase; duplicates are dropped.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/robalobadob/wordle/apps/go-tui/assets"
)

const (
	// DefaultLength is the classic five-letter board.
	DefaultLength = 5
	// DefaultAlphabet lists the keyboard letters in on-screen order.
	DefaultAlphabet = "qwertyuiopasdfghjklzxcvbnm"
)

// ErrNoAnswers is returned when no usable answer word survives filtering.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Dictionary is a read-only set of valid guesses plus the answer pool.
// It is safe for concurrent reads.
type Dictionary struct {
	length   int
	alphabet string

	answers    []string            // answer pool, in load order
	allowed    []string            // answers ∪ guesses, in load order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Option customizes New.
type Option func(*Dictionary)

// WithLength sets the word length (default 5).
func WithLength(n int) Option { return func(d *Dictionary) { d.length = n } }

// WithAlphabet restricts words to the given letters (default DefaultAlphabet).
func WithAlphabet(a string) Option {
	return func(d *Dictionary) { d.alphabet = strings.ToLower(a) }
}

// New builds a Dictionary. Words of the wrong length or with letters
// outside the alphabet are dropped. Every answer is also allowed.
func New(answers, allowed []string, opts ...Option) (*Dictionary, error) {
	d := &Dictionary{length: DefaultLength, alphabet: DefaultAlphabet}
	for _, o := range opts {
		o(d)
	}
	if d.length <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", d.length)
	}
	if d.alphabet == "" {
		return nil, errors.New("words: empty alphabet")
	}

	d.answersSet = make(map[string]struct{}, len(answers))
	d.allowedSet = make(map[string]struct{}, len(answers)+len(allowed))
	for _, w := range answers {
		if w = d.normalize(w); w == "" {
			continue
		}
		if _, dup := d.answersSet[w]; !dup {
			d.answersSet[w] = struct{}{}
			d.answers = append(d.answers, w)
		}
		d.allow(w)
	}
	for _, w := range allowed {
		if w = d.normalize(w); w != "" {
			d.allow(w)
		}
	}
	if len(d.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return d, nil
}

func (d *Dictionary) allow(w string) {
	if _, dup := d.allowedSet[w]; !dup {
		d.allowedSet[w] = struct{}{}
		d.allowed = append(d.allowed, w)
	}
}

// normalize lowercases and trims w, returning "" if it does not fit.
func (d *Dictionary) normalize(w string) string {
	w = strings.TrimSpace(strings.ToLower(w))
	if utf8.RuneCountInString(w) != d.length {
		return ""
	}
	for _, r := range w {
		if !strings.ContainsRune(d.alphabet, r) {
			return ""
		}
	}
	return w
}

// Length is the fixed word length.
func (d *Dictionary) Length() int { return d.length }

// Alphabet returns the letters words are drawn from.
func (d *Dictionary) Alphabet() string { return d.alphabet }

// Len counts valid guesses (answers ∪ allowed).
func (d *Dictionary) Len() int { return len(d.allowed) }

// AnswerCount counts the answer pool.
func (d *Dictionary) AnswerCount() int { return len(d.answers) }

// Answers returns a copy of the answer pool.
func (d *Dictionary) Answers() []string { return append([]string(nil), d.answers...) }

// AnswerAt returns the i-th answer, wrapping around the pool.
func (d *Dictionary) AnswerAt(i int) string {
	n := len(d.answers)
	return d.answers[((i%n)+n)%n]
}

// Contains reports whether w is a valid guess (case-insensitive).
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is in the answer pool.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToLower(w)]
	return ok
}

// RandomAnswer returns a uniformly random answer using crypto/rand.
func (d *Dictionary) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return d.answers[0]
	}
	return d.answers[nBig.Int64()]
}

// Suggest returns the closest valid guess to w by edit distance, or ""
// when w is already valid or nothing is close enough. Ties go to the word
// that was loaded first.
func (d *Dictionary) Suggest(w string) string {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" || d.Contains(w) {
		return ""
	}
	limit := suggestLimit(d.length)
	best, bestDist := "", limit+1
	for _, cand := range d.allowed {
		dist := levenshtein.ComputeDistance(w, cand)
		if dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	if length <= 5 {
		return 1
	}
	return 2
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Source says where Load reads word lists from. See the package comment
// for precedence.
type Source struct {
	DB          string // SQLite DSN / path
	AnswersFile string
	AllowedFile string
}

// Load reads word lists from src and builds a Dictionary.
func Load(ctx context.Context, src Source, opts ...Option) (*Dictionary, error) {
	var ansList, allowList []string

	switch {
	// Case 1: word database
	case src.DB != "":
		db, err := OpenDB(src.DB)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := Migrate(db); err != nil {
			return nil, err
		}
		ansList, allowList, err = LoadDB(ctx, db)
		if err != nil {
			return nil, err
		}

	// Case 2: both lists provided
	case src.AnswersFile != "" && src.AllowedFile != "":
		var err error
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	// Case 2b: only allowed file provided → use for both
	case src.AllowedFile != "":
		var err error
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	case src.AnswersFile != "":
		var err error
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}

	// Case 3: embedded defaults
	default:
		var err error
		if ansList, err = readEmbedded(assets.Answers); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = readEmbedded(assets.Allowed); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}

	return New(ansList, allowList, opts...)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func readEmbedded(open func() (fs.File, error)) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a newline-delimited word list. Lines are trimmed and
// lowercased; blank lines and lines starting with '#' are skipped.
// Length filtering happens in New.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}
