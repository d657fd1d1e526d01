// Package binfile edits binary files of arbitrary size through a single
// cursor.
//
// # Overview
//
// A File wraps one open operating-system file and exposes cursor-based
// operations that never need the whole file in memory:
//
//   - Read(n): exactly n bytes from the cursor, or ErrShortRead
//   - Write(p): overwrite at the cursor, extending the file at the end
//   - Apply(mode, p): read-modify-write (add, subtract, and, or, xor)
//   - Insert(p): write p at the cursor and shift the rest of the file back
//   - Seek(pos), SeekOffset(off): move the cursor within [0, Length()]
//   - Truncate(n): cut the file at or beyond the cursor
//   - Repeat(mode, p, n), WriteRandom(n): bulk writes in bounded chunks
//   - Find(p): move the cursor to the next occurrence of p
//   - AppendFile(path), Delete(): whole-file operations
//
// # Usage
//
// Opening and editing a file:
//
//	f, err := binfile.Open("firmware.bin")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	if err := f.Seek(0x200); err != nil {
//	    return err
//	}
//	hdr, err := f.Read(16)
//	// ...
//	err = f.Insert([]byte{0xDE, 0xAD, 0xBE, 0xEF})
//
// # Safety Checks
//
// Open refuses hidden and system files (Windows attributes; on Unix a
// dot-prefixed name or a non-regular file) with ErrRefused. Files that are
// not writable are opened readonly, and every mutating call on them fails
// with ErrRefused. The readonly state is decided once, at open time.
//
// # Insert
//
// Insert moves the tail of the file (cursor to end) into a scratch space
// that has no name on disk, writes the new bytes, and appends the tail back.
// Memory use is one copy buffer (Options.CopyBufferSize) no matter how large
// the file is; disk holds the displaced tail.
//
// Insert is not crash-atomic. If copying the tail back fails partway, the
// file holds the inserted bytes followed by a partial tail. Callers that
// cannot tolerate this must keep a backup.
//
// # Cursor Invariant
//
// After every completed call the cursor is within [0, Length()]. Seeking
// past the end is rejected; the file grows only by writing at the end. A
// failed Read leaves the cursor where it was.
//
// # Thread Safety
//
// A File is not safe for concurrent use. Other processes may modify the
// same file while it is open; this is not detected.
package binfile
