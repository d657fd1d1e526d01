package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"

	"github.com/joshuapare/bined/internal/command"
	"github.com/joshuapare/bined/internal/logger"
	"github.com/joshuapare/bined/internal/session"
)

const prompt = "Command: "

var (
	scriptPath string
	createFile bool
)

func init() {
	rootCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Read commands from a file instead of stdin")
	rootCmd.Flags().BoolVar(&createFile, "create", false, "Create [file] instead of opening it")
}

func runSession(args []string) error {
	if createFile && len(args) == 0 {
		return fmt.Errorf("--create needs a file argument")
	}

	in := io.Reader(os.Stdin)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
		interactive = false
		printVerbose("Reading commands from %s\n", scriptPath)
	}

	out := io.Writer(os.Stdout)
	if quiet {
		out = io.Discard
	}
	s := session.New(out, session.Options{
		File:      cfg.FileOptions(),
		DumpWidth: cfg.Output.DumpWidth,
		Clipboard: session.SystemClipboard{},
	})
	defer s.Close()

	if len(args) == 1 {
		if err := s.Open(args[0], createFile); err != nil {
			return err
		}
	}

	printInfo("%s\n", session.Banner)
	return runLoop(s, in, interactive)
}

// runLoop executes commands from in until EXIT or end of input. A failed
// command is reported and the loop continues.
func runLoop(s *session.Session, in io.Reader, interactive bool) error {
	st := newStyles(cfg.Output.Color)
	r := bufio.NewReader(in)
	limit := lineLimit()

	for {
		if interactive {
			fmt.Fprint(os.Stdout, st.prompt.Render(prompt))
		}
		line, err := readLine(r, limit)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, errLineTooLong) {
			logger.Warn("line rejected", "error", err)
			printError("Failed to execute command. %v\n", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read commands: %w", err)
		}

		exit, err := s.Execute(command.Parse(line))
		if err != nil {
			logger.Warn("command failed", "line", line, "error", err)
			printError("Failed to execute command. %v\n", err)
		}
		if exit {
			return nil
		}
	}
	return s.Close()
}

// lineSlack covers the keyword, mode prefix and separators around a hex payload.
const lineSlack = 4096

var errLineTooLong = errors.New("command line too long")

// lineLimit is the longest accepted command line: a hex payload for the
// largest allowed read, plus slack. 0 disables the limit.
func lineLimit() int {
	n := cfg.Editor.MaxReadBytes
	if n <= 0 || n > (math.MaxInt-lineSlack)/2 {
		return 0
	}
	return int(n)*2 + lineSlack
}

// readLine returns the next line without its terminator. A line longer than
// limit is consumed and reported as errLineTooLong; it is never buffered in
// full.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var (
		line    []byte
		n       int
		started bool
	)
	for {
		chunk, more, err := r.ReadLine()
		if err != nil {
			if started {
				break
			}
			return "", err
		}
		started = true
		n += len(chunk)
		if limit == 0 || n <= limit {
			line = append(line, chunk...)
		} else {
			line = nil
		}
		if !more {
			break
		}
	}
	if limit > 0 && n > limit {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", errLineTooLong, n, limit)
	}
	return string(line), nil
}
