package binfile

const (
	// defaultCopyBufferShift sizes the insert copy buffer (1 << 16 = 64KB).
	defaultCopyBufferShift = 16

	// defaultMaxReadShift caps a single Read (1 << 26 = 64MB).
	defaultMaxReadShift = 26
)

// Options configures a File.
//
// Use DefaultOptions() for production-ready defaults.
type Options struct {
	// CopyBufferSize is the size of the single buffer Insert moves data
	// through. It bounds the memory used by an insert regardless of file size.
	// Default: 64KB
	CopyBufferSize int

	// MaxRead rejects Read calls asking for more than this many bytes, since a
	// read materializes its result in memory. 0 disables the limit.
	// Default: 64MB
	MaxRead int64

	// ScratchDir is where Insert creates its scratch space. Placing it on the
	// same filesystem as the edited file keeps the tail copy local.
	// Default: "" (os.TempDir())
	ScratchDir string

	// FullSync makes Sync request a flush of the drive cache where the
	// platform distinguishes it (F_FULLFSYNC on macOS).
	// Default: false
	FullSync bool
}

// DefaultOptions returns the options used by Open and Create.
func DefaultOptions() Options {
	return Options{
		CopyBufferSize: 1 << defaultCopyBufferShift,
		MaxRead:        1 << defaultMaxReadShift,
	}
}

func (o Options) withDefaults() Options {
	if o.CopyBufferSize <= 0 {
		o.CopyBufferSize = 1 << defaultCopyBufferShift
	}
	if o.MaxRead < 0 {
		o.MaxRead = 0
	}
	return o
}
