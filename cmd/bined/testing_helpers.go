package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/bined/internal/config"
	"github.com/joshuapare/bined/internal/testutil"
)

// testFile writes content to a fresh temp file and returns its path
func testFile(t *testing.T, content []byte) string {
	t.Helper()
	return testutil.TempFile(t, "test.bin", content)
}

// resetFlags restores global flag state between tests
func resetFlags(t *testing.T) {
	t.Helper()
	verbose = false
	quiet = false
	noColor = false
	configPath = ""
	scriptPath = ""
	createFile = false
	dumpOffset = "0"
	dumpCount = ""
	dumpWidth = 0
	insertAt = ""
	insertHex = ""
	cfg = config.DefaultConfig()
	cfg.Output.Color = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain the pipe concurrently so large outputs cannot block the writer
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return <-done, fnErr
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
