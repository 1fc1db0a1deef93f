// Package util holds small formatting helpers for operator output.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"time"
)

// DigestWriter counts and hashes everything written through it.
type DigestWriter struct {
	w     io.Writer
	hash  hash.Hash
	count int64
}

// NewDigestWriter wraps w with a SHA-256 digest and byte count.
func NewDigestWriter(w io.Writer) *DigestWriter {
	return &DigestWriter{w: w, hash: sha256.New()}
}

func (d *DigestWriter) Write(p []byte) (int, error) {
	n, err := d.w.Write(p)
	d.hash.Write(p[:n])
	d.count += int64(n)

	return n, err
}

// Sum returns the hex SHA-256 of the bytes written so far.
func (d *DigestWriter) Sum() string {
	return hex.EncodeToString(d.hash.Sum(nil))
}

// Len returns the number of bytes written so far.
func (d *DigestWriter) Len() int64 {
	return d.count
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration rounds to milliseconds below a second and to seconds above.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return duration.Round(time.Millisecond).String()
	}

	return duration.Round(time.Second).String()
}
