package serialization

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ComputeChecksumReader computes SHA-256 checksum from an io.Reader.
// This is useful for computing checksums of large files without loading them entirely into memory.
func ComputeChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// ValidateChecksum compares computed checksum against stored checksum.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}

// FileChecksum computes the SHA-256 checksum of the file at path.
func FileChecksum(path string) ([32]byte, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ComputeChecksumReader(file)
}

// VerifyFile checks that the file at path has the expected checksum.
func VerifyFile(path string, want [32]byte) error {
	sum, err := FileChecksum(path)
	if err != nil {
		return err
	}
	if err := ValidateChecksum(sum, want); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
