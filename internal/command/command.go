// Package command turns one line of user input into an Instruction.
//
// Parsing never fails with an error: a blank line is KindEmpty, an unknown
// first word is KindUnknown, and a known keyword with a bad argument is
// KindInvalid. The interpreter keeps no state between lines and does no I/O.
package command

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/joshuapare/bined/binfile"
	"github.com/joshuapare/bined/internal/numparse"
)

// argExtractor splits a trimmed line into the keyword and the rest.
var argExtractor = regexp.MustCompile(`^(\S+)\s+(.+)$`)

// Spec describes one keyword for the help listing.
type Spec struct {
	Keyword string
	Kind    Kind
	Syntax  string
	Summary string
}

var specs = []Spec{
	{"OPEN", KindOpen, "OPEN <path>", "Open an existing file (quotes allowed)"},
	{"CREATE", KindCreate, "CREATE <path>", "Create a new file; never overwrites"},
	{"CLOSE", KindClose, "CLOSE", "Close the current file"},
	{"READ", KindRead, "READ <count>", "Dump exactly <count> bytes from the cursor"},
	{"SEEK", KindSeek, "SEEK <offset>", "Move the cursor; +n/-n is relative, n is absolute"},
	{"WRITE", KindWrite, "WRITE [+|-|&|^||]<hex>", "Overwrite or combine bytes at the cursor"},
	{"INSERT", KindInsert, "INSERT <hex>", "Insert bytes at the cursor, shifting the rest"},
	{"REPEAT", KindRepeat, "REPEAT <count> [+|-|&|^||]<hex>", "WRITE the bytes <count> times in a row"},
	{"RANDOM", KindRandom, "RANDOM <count>", "Overwrite <count> bytes at the cursor with random data"},
	{"FIND", KindFind, "FIND <hex>", "Move the cursor to the next occurrence of the bytes"},
	{"TRUNCATE", KindTruncate, "TRUNCATE [size]", "Cut the file at the cursor or at size"},
	{"COPY", KindCopy, "COPY <count>", "Copy bytes at the cursor to the clipboard"},
	{"PASTE", KindPaste, "PASTE", "Write clipboard bytes at the cursor"},
	{"CONCAT", KindConcat, "CONCAT <path>", "Append another file to the end of this one"},
	{"DELETE", KindDelete, "DELETE", "Close the current file and delete it"},
	{"STATUS", KindStatus, "STATUS", "Show the open file, cursor and length"},
	{"HELP", KindHelp, "HELP | ?", "Show this list"},
	{"EXIT", KindExit, "EXIT | QUIT", "Close the file and leave"},
}

var keywords = buildKeywords()

func buildKeywords() map[string]Kind {
	m := make(map[string]Kind, len(specs)+2)
	for _, s := range specs {
		m[s.Keyword] = s.Kind
	}
	m["?"] = KindHelp
	m["QUIT"] = KindExit
	return m
}

// Specs returns the keyword table in display order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Instruction is a parsed input line. It is immutable.
type Instruction struct {
	kind Kind
	args []string
}

// Kind returns the instruction kind.
func (in Instruction) Kind() Kind { return in.kind }

// Args returns a copy of the validated arguments.
func (in Instruction) Args() []string {
	if len(in.args) == 0 {
		return nil
	}
	out := make([]string, len(in.args))
	copy(out, in.args)
	return out
}

// Arg returns argument i, or "" when there is none.
func (in Instruction) Arg(i int) string {
	if i < 0 || i >= len(in.args) {
		return ""
	}
	return in.args[i]
}

func (in Instruction) String() string {
	if len(in.args) == 0 {
		return in.kind.String()
	}
	return in.kind.String() + " " + strings.Join(in.args, " ")
}

func instr(k Kind, args ...string) Instruction {
	return Instruction{kind: k, args: args}
}

var invalid = Instruction{kind: KindInvalid}

// Parse interprets one line of input.
func Parse(line string) Instruction {
	line = strings.TrimSpace(line)
	if line == "" {
		return instr(KindEmpty)
	}

	word := strings.Fields(line)[0]
	kind, ok := keywords[strings.ToUpper(word)]
	if !ok {
		return instr(KindUnknown)
	}

	switch kind {
	case KindOpen, KindCreate, KindConcat:
		return parsePath(kind, line)
	case KindRead, KindCopy, KindRandom:
		return parseCount(kind, line)
	case KindSeek:
		return parseSeek(line)
	case KindWrite:
		return parseWrite(line)
	case KindInsert, KindFind:
		return parseHex(kind, line)
	case KindRepeat:
		return parseRepeat(line)
	case KindTruncate:
		return parseTruncate(line)
	default:
		return instr(kind)
	}
}

// argument returns the text after the keyword.
func argument(line string) (string, bool) {
	m := argExtractor.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

func parsePath(kind Kind, line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return invalid
	}
	if len(arg) >= 2 && strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
		arg = arg[1 : len(arg)-1]
	}
	if strings.TrimSpace(arg) == "" {
		return invalid
	}
	return instr(kind, arg)
}

func parseCount(kind Kind, line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return invalid
	}
	v, err := numparse.Parse(arg)
	if err != nil || v < 0 {
		return invalid
	}
	return instr(kind, strconv.FormatInt(v, 10))
}

func parseSeek(line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return invalid
	}
	off, err := numparse.ParseOffset(arg)
	if err != nil {
		return invalid
	}
	return instr(KindSeek, off.Kind.String(), strconv.FormatInt(off.Value, 10))
}

var modePrefixes = map[byte]binfile.ByteMode{
	'+': binfile.Add,
	'-': binfile.Subtract,
	'&': binfile.And,
	'|': binfile.Or,
	'^': binfile.Xor,
}

func parseWrite(line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return invalid
	}
	mode, data, ok := modePayload(arg)
	if !ok {
		return invalid
	}
	return instr(KindWrite, mode, data)
}

// parseRepeat reads "<count> <payload>" into args [mode, hex, count].
func parseRepeat(line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return invalid
	}
	m := argExtractor.FindStringSubmatch(arg)
	if m == nil {
		return invalid
	}
	count, err := numparse.Parse(m[1])
	if err != nil || count < 0 {
		return invalid
	}
	mode, data, ok := modePayload(strings.TrimSpace(m[2]))
	if !ok {
		return invalid
	}
	return instr(KindRepeat, mode, data, strconv.FormatInt(count, 10))
}

// modePayload splits an optional byte-mode prefix off a hex payload.
func modePayload(arg string) (mode, data string, ok bool) {
	m := binfile.Overwrite
	if pm, found := modePrefixes[arg[0]]; found {
		m = pm
		arg = arg[1:]
	}
	b, err := numparse.ParseBytes(arg)
	if err != nil {
		return "", "", false
	}
	return m.String(), strings.ToUpper(hex.EncodeToString(b)), true
}

func parseHex(kind Kind, line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return invalid
	}
	b, err := numparse.ParseBytes(arg)
	if err != nil {
		return invalid
	}
	return instr(kind, strings.ToUpper(hex.EncodeToString(b)))
}

func parseTruncate(line string) Instruction {
	arg, ok := argument(line)
	if !ok {
		return instr(KindTruncate)
	}
	v, err := numparse.Parse(arg)
	if err != nil || v < 0 {
		return invalid
	}
	return instr(KindTruncate, strconv.FormatInt(v, 10))
}
