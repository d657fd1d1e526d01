package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind Kind
		wantArgs []string
	}{
		{"empty", "", KindEmpty, nil},
		{"whitespace", " \t ", KindEmpty, nil},
		{"unknown", "FROB 12", KindUnknown, nil},
		{"exit", "exit", KindExit, nil},
		{"quit alias", "Quit", KindExit, nil},
		{"close ignores trailing", "CLOSE now", KindClose, nil},
		{"help", "help", KindHelp, nil},
		{"help question mark", "?", KindHelp, nil},
		{"status", "STATUS", KindStatus, nil},
		{"paste", "paste", KindPaste, nil},

		{"open", "open data.bin", KindOpen, []string{"data.bin"}},
		{"open quoted", `OPEN "my file.bin"`, KindOpen, []string{"my file.bin"}},
		{"open spaces kept", "OPEN  my file.bin ", KindOpen, []string{"my file.bin"}},
		{"open missing", "OPEN", KindInvalid, nil},
		{"open blank quotes", `OPEN ""`, KindInvalid, nil},
		{"open quoted spaces", `OPEN "  "`, KindInvalid, nil},
		{"create", "create new.bin", KindCreate, []string{"new.bin"}},

		{"read decimal", "READ 16", KindRead, []string{"16"}},
		{"read hex", "read 0x20", KindRead, []string{"32"}},
		{"read negative", "READ -1", KindInvalid, nil},
		{"read garbage", "READ lots", KindInvalid, nil},
		{"read missing", "READ", KindInvalid, nil},

		{"seek absolute", "SEEK 10", KindSeek, []string{"Absolute", "10"}},
		{"seek relative negative", "seek -5", KindSeek, []string{"Relative", "-5"}},
		{"seek relative hex", "SEEK +0x10", KindSeek, []string{"Relative", "16"}},
		{"seek garbage", "SEEK 0xZZ", KindInvalid, nil},
		{"seek missing", "SEEK", KindInvalid, nil},

		{"write overwrite", "WRITE de ad", KindWrite, []string{"Overwrite", "DEAD"}},
		{"write add", "WRITE +01", KindWrite, []string{"Add", "01"}},
		{"write subtract", "WRITE -0x0102", KindWrite, []string{"Subtract", "0102"}},
		{"write and", "WRITE &F0", KindWrite, []string{"And", "F0"}},
		{"write or", "WRITE |0F", KindWrite, []string{"Or", "0F"}},
		{"write xor", "WRITE ^FF FF", KindWrite, []string{"Xor", "FFFF"}},
		{"write odd digits", "WRITE ABC", KindInvalid, nil},
		{"write prefix only", "WRITE +", KindInvalid, nil},

		{"insert", "INSERT 00 11 22", KindInsert, []string{"001122"}},
		{"insert bad", "INSERT xyz", KindInvalid, nil},
		{"insert missing", "INSERT", KindInvalid, nil},

		{"truncate at cursor", "TRUNCATE", KindTruncate, nil},
		{"truncate size", "truncate 0x100", KindTruncate, []string{"256"}},
		{"truncate negative", "TRUNCATE -4", KindInvalid, nil},

		{"copy", "COPY 8", KindCopy, []string{"8"}},
		{"copy missing", "COPY", KindInvalid, nil},

		{"find", "FIND de ad", KindFind, []string{"DEAD"}},
		{"find bad", "FIND nope", KindInvalid, nil},
		{"find missing", "FIND", KindInvalid, nil},

		{"repeat", "REPEAT 4 00", KindRepeat, []string{"Overwrite", "00", "4"}},
		{"repeat hex count and mode", "repeat 0x10 ^ff 00", KindRepeat, []string{"Xor", "FF00", "16"}},
		{"repeat missing payload", "REPEAT 4", KindInvalid, nil},
		{"repeat negative", "REPEAT -1 00", KindInvalid, nil},
		{"repeat bad payload", "REPEAT 2 +", KindInvalid, nil},

		{"random", "RANDOM 32", KindRandom, []string{"32"}},
		{"random missing", "RANDOM", KindInvalid, nil},

		{"concat", `CONCAT "other file.bin"`, KindConcat, []string{"other file.bin"}},
		{"concat missing", "CONCAT", KindInvalid, nil},
		{"delete", "delete", KindDelete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			assert.Equal(t, tt.wantKind, got.Kind())
			assert.Equal(t, tt.wantArgs, got.Args())
		})
	}
}

func TestParse_CaseInsensitiveKeyword(t *testing.T) {
	for _, line := range []string{"read 4", "READ 4", "ReAd 4"} {
		assert.Equal(t, KindRead, Parse(line).Kind(), line)
	}
}

func TestInstruction_ArgsAreCopied(t *testing.T) {
	in := Parse("OPEN a.bin")
	args := in.Args()
	args[0] = "mutated"
	assert.Equal(t, "a.bin", in.Arg(0))
	assert.Equal(t, "", in.Arg(1))
	assert.Equal(t, "", in.Arg(-1))
}

func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "Seek Relative -5", Parse("SEEK -5").String())
	assert.Equal(t, "Close", Parse("CLOSE").String())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Truncate", KindTruncate.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())

	assert.True(t, KindRead.NeedsFile())
	assert.True(t, KindInsert.NeedsFile())
	assert.False(t, KindOpen.NeedsFile())
	assert.False(t, KindStatus.NeedsFile())
	assert.True(t, KindFind.NeedsFile())
	assert.True(t, KindDelete.NeedsFile())
	assert.Equal(t, "Concat", KindConcat.String())
}

func TestSpecs_CoverKeywords(t *testing.T) {
	specs := Specs()
	assert.NotEmpty(t, specs)
	for _, s := range specs {
		assert.Equal(t, s.Kind, keywords[s.Keyword], s.Keyword)
	}
}
