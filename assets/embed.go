// Package assets holds the default word lists compiled into the binary.
// Parsing lives in the words package; this package only hands out the files.
package assets

import (
	"embed"
	"io/fs"
)

// File names inside FS.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed answers.txt allowed.txt
var FS embed.FS

// Answers opens the default target pool.
func Answers() (fs.File, error) { return FS.Open(AnswersFile) }

// Allowed opens the extra valid guesses that never become targets.
func Allowed() (fs.File, error) { return FS.Open(AllowedFile) }
