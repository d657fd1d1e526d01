package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bined/binfile"
	"github.com/joshuapare/bined/internal/hexdump"
	"github.com/joshuapare/bined/internal/numparse"
)

// dumpChunkLines is how many dump lines are read from the file at a time.
const dumpChunkLines = 4096

var (
	dumpOffset string
	dumpCount  string
	dumpWidth  int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpOffset, "offset", "0", "Start offset (decimal or 0x hex)")
	cmd.Flags().StringVar(&dumpCount, "count", "", "Number of bytes to dump (default: to end of file)")
	cmd.Flags().IntVar(&dumpWidth, "width", 0, "Bytes per line (default from config)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump a range of a file",
		Long: `The dump command prints a range of a file as offset, hex and glyph columns.

Example:
  bined dump firmware.bin
  bined dump firmware.bin --offset 0x200 --count 64
  bined dump firmware.bin --width 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	offset, err := numparse.Parse(dumpOffset)
	if err != nil {
		return fmt.Errorf("invalid --offset %q: %w", dumpOffset, err)
	}
	width := dumpWidth
	if width < 1 {
		width = cfg.Output.DumpWidth
	}
	// every read must hold at least one whole line
	if limit := cfg.Editor.MaxReadBytes; limit > 0 && int64(width) > limit {
		return fmt.Errorf("%w: width %d is larger than max_read_bytes %d",
			binfile.ErrInvalidArgument, width, limit)
	}

	printVerbose("Opening file: %s\n", path)
	f, err := binfile.OpenWithOptions(path, false, cfg.FileOptions())
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := f.Seek(offset); err != nil {
		return err
	}

	size, err := f.Length()
	if err != nil {
		return err
	}
	remaining := size - offset
	if dumpCount != "" {
		n, err := numparse.Parse(dumpCount)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid --count %q", dumpCount)
		}
		if n > remaining {
			return &binfile.ShortReadError{Want: n, Got: remaining}
		}
		remaining = n
	}

	return dumpRange(f, offset, remaining, width)
}

// dumpRange prints count bytes starting at the cursor, reading whole lines at
// a time so memory stays bounded for large ranges. Only the last chunk is
// trimmed, so the output matches a single hexdump.DumpAt of the range.
func dumpRange(f *binfile.File, base, count int64, width int) error {
	chunk := int64(width * dumpChunkLines)
	if limit := cfg.Editor.MaxReadBytes; limit > 0 && chunk > limit {
		chunk = limit - limit%int64(width)
	}
	for count > 0 {
		n := min(chunk, count)
		data, err := f.Read(n)
		if err != nil {
			return err
		}
		if n == count {
			printInfo("%s\n", hexdump.DumpAt(data, base, width))
		} else {
			printInfo("%s", hexdump.Lines(data, base, width))
		}
		base += n
		count -= n
	}
	return nil
}
