package anagram

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// Default size for the buffer used when hashing files
const defaultBufferSize = 32 * 1024 // 32KB

// HashFunc defines a function that creates a new hash.Hash instance.
type HashFunc func() hash.Hash

// bufferPool is a pool of byte slices used for file I/O during hashing
var bufferPool = sync.Pool{
	New: func() interface{} {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// Fingerprint computes the hex digest of the file at path.
// The file is streamed in fixed-size chunks, so memory use does not grow
// with the file. Only the file's bytes are hashed.
// A nil newHash selects xxHash64.
func Fingerprint(fs afero.Fs, path string, newHash HashFunc) (string, error) {
	if newHash == nil {
		newHash = defaultHashFunc
	}

	file, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	h := newHash()
	if err := hashReader(file, h); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// hashReader hashes the content from a reader using the provided hash.
func hashReader(content io.Reader, h hash.Hash) error {
	bufPtr := bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer bufferPool.Put(bufPtr)

	_, err := io.CopyBuffer(h, content, buffer)
	if err != nil {
		return fmt.Errorf("failed to copy content: %w", err)
	}
	return nil
}

// defaultHashFunc returns the default hash function (xxHash64).
func defaultHashFunc() hash.Hash {
	return xxhash.New()
}
