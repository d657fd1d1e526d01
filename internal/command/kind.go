package command

import "fmt"

// Kind identifies the instruction produced for one input line.
type Kind int

const (
	// KindEmpty is a blank line.
	KindEmpty Kind = iota
	// KindInvalid is a known keyword with a missing or malformed argument.
	KindInvalid
	// KindUnknown is a line whose first word is not a keyword.
	KindUnknown
	KindExit
	KindOpen
	KindCreate
	KindClose
	KindRead
	KindSeek
	KindWrite
	KindInsert
	KindTruncate
	KindCopy
	KindPaste
	KindStatus
	KindHelp
	KindFind
	KindRepeat
	KindRandom
	KindDelete
	KindConcat
)

var kindNames = [...]string{
	KindEmpty:    "Empty",
	KindInvalid:  "Invalid",
	KindUnknown:  "Unknown",
	KindExit:     "Exit",
	KindOpen:     "Open",
	KindCreate:   "Create",
	KindClose:    "Close",
	KindRead:     "Read",
	KindSeek:     "Seek",
	KindWrite:    "Write",
	KindInsert:   "Insert",
	KindTruncate: "Truncate",
	KindCopy:     "Copy",
	KindPaste:    "Paste",
	KindStatus:   "Status",
	KindHelp:     "Help",
	KindFind:     "Find",
	KindRepeat:   "Repeat",
	KindRandom:   "Random",
	KindDelete:   "Delete",
	KindConcat:   "Concat",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NeedsFile reports whether the instruction operates on an open file.
func (k Kind) NeedsFile() bool {
	switch k {
	case KindRead, KindSeek, KindWrite, KindInsert, KindTruncate, KindCopy, KindPaste,
		KindFind, KindRepeat, KindRandom, KindDelete, KindConcat:
		return true
	}
	return false
}
