package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

// Config holds application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Words     WordsConfig     `mapstructure:"words"`
	Challenge ChallengeConfig `mapstructure:"challenge"`
	Log       LogConfig       `mapstructure:"log"`
}

// GameConfig holds round rules and presentation timing.
type GameConfig struct {
	WordLength  int           `mapstructure:"word_length"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	Alphabet    string        `mapstructure:"alphabet"`
	RevealDelay time.Duration `mapstructure:"reveal_delay"`
	Daily       bool          `mapstructure:"daily"`
	DailySalt   string        `mapstructure:"daily_salt"`
}

// WordsConfig says where the dictionary comes from. All empty means the
// embedded lists.
type WordsConfig struct {
	DB          string `mapstructure:"db"`
	AnswersFile string `mapstructure:"answers_file"`
	AllowedFile string `mapstructure:"allowed_file"`
}

// ChallengeConfig holds share-code settings.
type ChallengeConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
	Code   string        `mapstructure:"code"`
}

// LogConfig controls zerolog. The terminal belongs to the UI, so logs go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"word-length":   "game.word_length",
	"max-attempts":  "game.max_attempts",
	"alphabet":      "game.alphabet",
	"reveal-delay":  "game.reveal_delay",
	"daily":         "game.daily",
	"words-db":      "words.db",
	"answers-file":  "words.answers_file",
	"allowed-file":  "words.allowed_file",
	"challenge":     "challenge.code",
	"challenge-ttl": "challenge.ttl",
	"log-level":     "log.level",
	"log-file":      "log.file",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("word-length", words.DefaultLength, "letters per word")
	fs.Int("max-attempts", 5, "guesses per round")
	fs.String("alphabet", words.DefaultAlphabet, "keyboard letters, in on-screen order")
	fs.Duration("reveal-delay", 2*time.Second, "pause before the end screen")
	fs.Bool("daily", false, "play today's word")
	fs.String("words-db", "", "SQLite word database")
	fs.String("answers-file", "", "newline-delimited answer list")
	fs.String("allowed-file", "", "newline-delimited list of extra valid guesses")
	fs.String("challenge", "", "play the word inside a challenge code")
	fs.Duration("challenge-ttl", 7*24*time.Hour, "lifetime of generated challenge codes (0 = forever)")
	fs.String("log-level", "info", "zerolog level")
	fs.String("log-file", "", "log file (default $TMPDIR/wordle.log)")
}

// Load reads configuration from defaults, config file, env and flags, in
// increasing precedence. Env var overrides use prefix WORDLE_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("game.word_length", words.DefaultLength)
	v.SetDefault("game.max_attempts", 5)
	v.SetDefault("game.alphabet", words.DefaultAlphabet)
	v.SetDefault("game.reveal_delay", 2*time.Second)
	v.SetDefault("game.daily", false)
	v.SetDefault("game.daily_salt", "local_dev_salt")
	v.SetDefault("words.db", "")
	v.SetDefault("words.answers_file", "")
	v.SetDefault("words.allowed_file", "")
	v.SetDefault("challenge.secret", "dev_secret_change_me")
	v.SetDefault("challenge.ttl", 7*24*time.Hour)
	v.SetDefault("challenge.code", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "wordle.log"))

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("WORDLE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wordle"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	// A missing default config file is fine; a broken or missing explicit one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(os.TempDir(), "wordle.log")
	}
	return c, c.Validate()
}

// Validate rejects settings no round could be played with.
func (c Config) Validate() error {
	switch {
	case c.Game.WordLength <= 0:
		return fmt.Errorf("config: game.word_length must be positive, got %d", c.Game.WordLength)
	case c.Game.MaxAttempts <= 0:
		return fmt.Errorf("config: game.max_attempts must be positive, got %d", c.Game.MaxAttempts)
	case strings.TrimSpace(c.Game.Alphabet) == "":
		return errors.New("config: game.alphabet is empty")
	case c.Game.RevealDelay < 0:
		return fmt.Errorf("config: game.reveal_delay is negative (%s)", c.Game.RevealDelay)
	}
	return nil
}

// WordSource converts the words section into a words.Source.
func (c Config) WordSource() words.Source {
	return words.Source{
		DB:          c.Words.DB,
		AnswersFile: c.Words.AnswersFile,
		AllowedFile: c.Words.AllowedFile,
	}
}

// WordOptions returns the dictionary options implied by the game section.
func (c Config) WordOptions() []words.Option {
	return []words.Option{
		words.WithLength(c.Game.WordLength),
		words.WithAlphabet(c.Game.Alphabet),
	}
}
