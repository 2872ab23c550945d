package pdf2json

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileInfo captures the filesystem identity of the source document.
type fileInfo struct {
	name     string // base name without extension
	fileName string
	absPath  string
	size     int64
	hash     string
	modTime  time.Time
}

// collectFileInfo reads size, hash and timestamps for an already-validated
// path. Failures here are races with the filesystem and map to ErrIO.
func collectFileInfo(path string) (fileInfo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fileInfo{}, fmt.Errorf("%w: resolving path %s: %v", ErrIO, path, err)
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return fileInfo{}, fmt.Errorf("%w: reading attributes of %s: %v", ErrIO, absPath, err)
	}

	hash, err := HashFile(absPath)
	if err != nil {
		return fileInfo{}, fmt.Errorf("%w: hashing %s: %v", ErrIO, absPath, err)
	}

	fileName := filepath.Base(absPath)
	return fileInfo{
		name:     strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		fileName: fileName,
		absPath:  absPath,
		size:     fi.Size(),
		hash:     hash,
		modTime:  fi.ModTime(),
	}, nil
}

// HashFile computes the SHA-256 hash of a file's content. The same digest
// identifies unchanged inputs across runs, which the batch tooling uses to
// skip documents that were already converted.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
