package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ctrezevant/supercalc"
)

const (
	prompt      = ">>> "
	historyFile = ".supercalc_history"
)

// repl reads statements from the terminal until end of input or an
// interrupt.
func repl(sess *supercalc.Session, pr printer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer(sess))

	var hist string
	if home, err := os.UserHomeDir(); err == nil {
		hist = filepath.Join(home, historyFile)
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			io.WriteString(os.Stdout, "\n")
			return nil
		default:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		pr.run(sess, line)
	}
}

// completer completes the name at the end of the line from the names bound
// in the session.
func completer(sess *supercalc.Session) liner.Completer {
	return func(line string) []string {
		i := strings.LastIndexFunc(line, func(r rune) bool {
			return !(r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
		})
		head, word := line[:i+1], line[i+1:]
		if word == "" {
			return nil
		}
		var r []string
		for _, name := range sess.Context().Names() {
			if strings.HasPrefix(name, word) {
				r = append(r, head+name)
			}
		}
		return r
	}
}
