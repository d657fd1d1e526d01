package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bined/binfile"
	"github.com/joshuapare/bined/internal/numparse"
)

var (
	insertAt  string
	insertHex string
)

func init() {
	cmd := newInsertCmd()
	cmd.Flags().StringVar(&insertAt, "at", "", "Offset to insert at (decimal or 0x hex, required)")
	cmd.Flags().StringVar(&insertHex, "hex", "", "Bytes to insert as hex (required)")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("hex")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <file>",
		Short: "Insert bytes into a file, shifting the rest forward",
		Long: `The insert command adds bytes at an offset without overwriting anything.
Everything from the offset onward moves forward by the number of bytes
inserted. The tail is staged in an unnamed temporary file, so the file is
never loaded into memory.

Example:
  bined insert firmware.bin --at 0x100 --hex "DE AD BE EF"
  bined insert data.bin --at 0 --hex 0x00FF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(args)
		},
	}
	return cmd
}

func runInsert(args []string) error {
	path := args[0]

	at, err := numparse.Parse(insertAt)
	if err != nil {
		return fmt.Errorf("invalid --at %q: %w", insertAt, err)
	}
	data, err := numparse.ParseBytes(insertHex)
	if err != nil {
		return fmt.Errorf("invalid --hex %q: %w", insertHex, err)
	}

	printVerbose("Opening file: %s\n", path)
	f, err := binfile.OpenWithOptions(path, false, cfg.FileOptions())
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := f.Seek(at); err != nil {
		return err
	}
	if err := f.Insert(data); err != nil {
		return fmt.Errorf("insert failed, the file may be incomplete: %w", err)
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	printInfo("Inserted %d bytes at 0x%X\n", len(data), at)
	return nil
}
