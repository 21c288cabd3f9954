package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/robalobadob/wordle/apps/go-tui/internal/challenge"
	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/tui"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

const usage = `usage:
  wordle [flags]                               play a round
  wordle challenge WORD [flags]                print a challenge code for WORD
  wordle import-words --words-db PATH ANSWERS [ALLOWED]
                                               build a SQLite word database

flags:
`

func main() {
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("wordle", pflag.ExitOnError)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(2)
	}
	logFile, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(2)
	}
	defer logFile.Close()

	ctx := context.Background()
	args := fs.Args()
	cmd := "play"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "play":
		err = runPlay(ctx, cfg)
	case "challenge":
		err = runChallenge(ctx, cfg, args)
	case "import-words":
		err = runImport(ctx, cfg, args)
	default:
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		log.Fatal().Err(err).Str("cmd", cmd).Msg("exited")
	}
}

// runPlay loads the dictionary, picks the first target and runs the UI.
func runPlay(ctx context.Context, cfg config.Config) error {
	dict, err := words.Load(ctx, cfg.WordSource(), cfg.WordOptions()...)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	log.Info().Int("words", dict.Len()).Int("answers", dict.AnswerCount()).Msg("dictionary loaded")

	opts := game.Options{MaxAttempts: cfg.Game.MaxAttempts, Alphabet: cfg.Game.Alphabet}
	switch {
	case cfg.Challenge.Code != "":
		ch, err := challenge.Decode(cfg.Challenge.Secret, cfg.Challenge.Code)
		if err != nil {
			return err
		}
		opts.Target = ch.Word
		if ch.MaxAttempts > 0 {
			opts.MaxAttempts = ch.MaxAttempts
		}
	case cfg.Game.Daily:
		now := time.Now()
		opts.Target = daily.Answer(now, cfg.Game.DailySalt, dict.Answers())
		log.Info().Str("date", daily.DateKey(now)).Msg("daily round")
	}

	m, err := tui.New(tui.Options{
		Dict:        dict,
		Game:        opts,
		RevealDelay: cfg.Game.RevealDelay,
		Logger:      log.Logger,
	})
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// runChallenge prints a share code for a dictionary word.
func runChallenge(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) != 1 {
		return errors.New("challenge: expected exactly one WORD")
	}
	dict, err := words.Load(ctx, cfg.WordSource(), cfg.WordOptions()...)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	word := strings.ToLower(strings.TrimSpace(args[0]))
	if !dict.Contains(word) {
		return fmt.Errorf("challenge: %q is not in the word list", word)
	}
	code, err := challenge.Encode(cfg.Challenge.Secret, challenge.Challenge{
		Word:        word,
		MaxAttempts: cfg.Game.MaxAttempts,
	}, cfg.Challenge.TTL)
	if err != nil {
		return err
	}
	fmt.Println(code)
	return nil
}

// runImport writes text word lists into the SQLite word database.
func runImport(ctx context.Context, cfg config.Config, args []string) error {
	if cfg.Words.DB == "" {
		return errors.New("import-words: --words-db is required")
	}
	if len(args) < 1 || len(args) > 2 {
		return errors.New("import-words: expected ANSWERS [ALLOWED]")
	}
	answers, err := readList(args[0])
	if err != nil {
		return err
	}
	var allowed []string
	if len(args) == 2 {
		if allowed, err = readList(args[1]); err != nil {
			return err
		}
	}

	db, err := words.OpenDB(cfg.Words.DB)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := words.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	n, err := words.ImportWords(ctx, db, answers, allowed)
	if err != nil {
		return err
	}
	log.Info().Str("db", cfg.Words.DB).Int("rows", n).Msg("words imported")
	fmt.Printf("imported %d words into %s\n", n, cfg.Words.DB)
	return nil
}

func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return words.Parse(f)
}
