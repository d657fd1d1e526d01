// Package session holds the state of one interactive editing session and
// dispatches parsed instructions against it.
package session

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joshuapare/bined/binfile"
	"github.com/joshuapare/bined/internal/command"
	"github.com/joshuapare/bined/internal/hexdump"
	"github.com/joshuapare/bined/internal/logger"
	"github.com/joshuapare/bined/internal/numparse"
)

// Banner is printed at startup and for a blank line.
const Banner = "bined | Type ? for help"

// Options configures a Session.
type Options struct {
	// File holds the options used for every OPEN and CREATE.
	File binfile.Options
	// DumpWidth is the number of bytes per READ output line.
	DumpWidth int
	// Clipboard backs COPY and PASTE. nil disables both.
	Clipboard Clipboard
}

// Session owns at most one open file.
type Session struct {
	out  io.Writer
	opts Options
	file *binfile.File
}

// New creates a session that prints results to out.
func New(out io.Writer, opts Options) *Session {
	if opts.DumpWidth < 1 {
		opts.DumpWidth = hexdump.DefaultWidth
	}
	return &Session{out: out, opts: opts}
}

// File returns the open file, or nil.
func (s *Session) File() *binfile.File { return s.file }

// Open opens path, closing any file that is already open. A failed open
// leaves the previous file closed.
func (s *Session) Open(path string, create bool) error {
	if s.file != nil {
		if err := s.closeFile(); err != nil {
			logger.Warn("close before open failed", "error", err)
		}
		s.println("Closed existing file")
	}

	f, err := binfile.OpenWithOptions(path, create, s.opts.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	s.file = f
	s.println("Opened " + f.Path())
	return nil
}

// Close releases the open file, if any.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	return s.closeFile()
}

func (s *Session) closeFile() error {
	f := s.file
	s.file = nil
	return f.Close()
}

// Execute runs one instruction. It returns exit=true for EXIT. A returned
// error describes a failed command; the session stays usable.
func (s *Session) Execute(in command.Instruction) (exit bool, err error) {
	logger.Debug("execute", "instruction", in.String())

	kind := in.Kind()
	if kind.NeedsFile() && s.file == nil {
		return false, ErrNoFile
	}

	switch kind {
	case command.KindEmpty:
		s.println(Banner)
	case command.KindInvalid:
		s.println("Command or arguments are invalid")
	case command.KindUnknown:
		s.println("Unknown command")
	case command.KindHelp:
		s.help()
	case command.KindExit:
		s.println("Exiting bined")
		return true, s.Close()
	case command.KindOpen:
		return false, s.Open(in.Arg(0), false)
	case command.KindCreate:
		return false, s.Open(in.Arg(0), true)
	case command.KindClose:
		if s.file == nil {
			return false, ErrNoFile
		}
		if err := s.closeFile(); err != nil {
			return false, err
		}
		s.println("File closed")
	case command.KindStatus:
		return false, s.status()
	case command.KindRead:
		return false, s.read(in)
	case command.KindSeek:
		return false, s.seek(in)
	case command.KindWrite:
		return false, s.write(in)
	case command.KindInsert:
		return false, s.insert(in)
	case command.KindTruncate:
		return false, s.truncate(in)
	case command.KindCopy:
		return false, s.copy(in)
	case command.KindPaste:
		return false, s.paste()
	case command.KindFind:
		return false, s.find(in)
	case command.KindRepeat:
		return false, s.repeat(in)
	case command.KindRandom:
		return false, s.random(in)
	case command.KindConcat:
		return false, s.concat(in)
	case command.KindDelete:
		return false, s.deleteFile()
	default:
		return false, fmt.Errorf("unhandled instruction %s", kind)
	}
	return false, nil
}

func (s *Session) read(in command.Instruction) error {
	count, err := strconv.ParseInt(in.Arg(0), 10, 64)
	if err != nil {
		return err
	}
	pos, err := s.file.Position()
	if err != nil {
		return err
	}
	data, err := s.file.Read(count)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		s.println(hexdump.DumpAt(data, pos, s.opts.DumpWidth))
	}
	return nil
}

func (s *Session) seek(in command.Instruction) error {
	kind, err := numparse.ParseOffsetKind(in.Arg(0))
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(in.Arg(1), 10, 64)
	if err != nil {
		return err
	}
	pos, err := s.file.SeekOffset(numparse.Offset{Kind: kind, Value: v})
	if err != nil {
		return err
	}
	s.println(fmt.Sprintf("New position: %d", pos))
	return nil
}

func (s *Session) write(in command.Instruction) error {
	mode, err := binfile.ParseByteMode(in.Arg(0))
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(in.Arg(1))
	if err != nil {
		return err
	}
	if err := s.file.Apply(mode, data); err != nil {
		return err
	}
	return s.reportPosition("Wrote", int64(len(data)))
}

func (s *Session) insert(in command.Instruction) error {
	data, err := hex.DecodeString(in.Arg(0))
	if err != nil {
		return err
	}
	if err := s.file.Insert(data); err != nil {
		return err
	}
	return s.reportPosition("Inserted", int64(len(data)))
}

func (s *Session) truncate(in command.Instruction) error {
	if len(in.Args()) == 0 {
		if err := s.file.TruncateAtCursor(); err != nil {
			return err
		}
	} else {
		size, err := strconv.ParseInt(in.Arg(0), 10, 64)
		if err != nil {
			return err
		}
		if err := s.file.Truncate(size); err != nil {
			return err
		}
	}
	n, err := s.file.Length()
	if err != nil {
		return err
	}
	s.println(fmt.Sprintf("New length: %d", n))
	return nil
}

func (s *Session) copy(in command.Instruction) error {
	if s.opts.Clipboard == nil {
		return ErrNoClipboard
	}
	count, err := strconv.ParseInt(in.Arg(0), 10, 64)
	if err != nil {
		return err
	}
	pos, err := s.file.Position()
	if err != nil {
		return err
	}
	data, err := s.file.Read(count)
	if err != nil {
		return err
	}
	// COPY does not move the cursor.
	if err := s.file.Seek(pos); err != nil {
		return err
	}
	if err := s.opts.Clipboard.WriteAll(strings.ToUpper(hex.EncodeToString(data))); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	s.println(fmt.Sprintf("Copied %d bytes", len(data)))
	return nil
}

func (s *Session) paste() error {
	if s.opts.Clipboard == nil {
		return ErrNoClipboard
	}
	text, err := s.opts.Clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	data, err := numparse.ParseBytes(text)
	if err != nil {
		return fmt.Errorf("clipboard does not hold hex bytes: %w", err)
	}
	if err := s.file.Write(data); err != nil {
		return err
	}
	return s.reportPosition("Pasted", int64(len(data)))
}

func (s *Session) find(in command.Instruction) error {
	pattern, err := hex.DecodeString(in.Arg(0))
	if err != nil {
		return err
	}
	pos, found, err := s.file.Find(pattern)
	if err != nil {
		return err
	}
	if !found {
		s.println("Not found")
		return nil
	}
	s.println(fmt.Sprintf("Found at %d (0x%X)", pos, pos))
	return nil
}

func (s *Session) repeat(in command.Instruction) error {
	mode, err := binfile.ParseByteMode(in.Arg(0))
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(in.Arg(1))
	if err != nil {
		return err
	}
	count, err := strconv.ParseInt(in.Arg(2), 10, 64)
	if err != nil {
		return err
	}
	if err := s.file.Repeat(mode, data, count); err != nil {
		return err
	}
	return s.reportPosition("Wrote", int64(len(data))*count)
}

func (s *Session) random(in command.Instruction) error {
	count, err := strconv.ParseInt(in.Arg(0), 10, 64)
	if err != nil {
		return err
	}
	if err := s.file.WriteRandom(count); err != nil {
		return err
	}
	return s.reportPosition("Wrote", count)
}

func (s *Session) concat(in command.Instruction) error {
	n, err := s.file.AppendFile(in.Arg(0))
	if err != nil {
		return err
	}
	return s.reportPosition("Appended", n)
}

func (s *Session) deleteFile() error {
	path := s.file.Path()
	err := s.file.Delete()
	if s.file.Closed() {
		s.file = nil
	}
	if err != nil {
		return err
	}
	s.println("Deleted " + path)
	return nil
}

func (s *Session) status() error {
	if s.file == nil {
		s.println("No file open")
		return nil
	}
	pos, err := s.file.Position()
	if err != nil {
		return err
	}
	n, err := s.file.Length()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s\n", s.file.Path())
	fmt.Fprintf(tw, "Position:\t%d (0x%X)\n", pos, pos)
	fmt.Fprintf(tw, "Length:\t%d (0x%X)\n", n, n)
	fmt.Fprintf(tw, "Readonly:\t%t\n", s.file.Readonly())
	return tw.Flush()
}

func (s *Session) help() {
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, spec := range command.Specs() {
		fmt.Fprintf(tw, "%s\t%s\n", spec.Syntax, spec.Summary)
	}
	_ = tw.Flush()
}

func (s *Session) reportPosition(verb string, n int64) error {
	pos, err := s.file.Position()
	if err != nil {
		return err
	}
	s.println(fmt.Sprintf("%s %d bytes, new position: %d", verb, n, pos))
	return nil
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
