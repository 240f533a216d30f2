package app

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// manifestHashKey is the fixed key used for dataset content hashing.
// Hashes only need to be stable identifiers for cache keys, so the key is
// hardcoded; it must be exactly 32 bytes.
var manifestHashKey = []byte("cargoline manifest hash\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// hashData returns the HighwayHash of manifest bytes as a hex string.
func hashData(data []byte) string {
	hash, err := highwayhash.New(manifestHashKey)
	if err != nil {
		// Only reachable with a malformed key length.
		panic(fmt.Sprintf("manifest hash key: %v", err))
	}
	hash.Write(data)
	return hex.EncodeToString(hash.Sum(nil))
}

// CalculateFileHash calculates the HighwayHash of a file's content
// without holding the file in memory.
func CalculateFileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hash, err := highwayhash.New(manifestHashKey)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}
	if _, err := io.Copy(hash, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
