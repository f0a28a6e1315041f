// Package fingerprint digests bingo cards so duplicates can be detected
// across a session.
//
// Cells are encoded in row-major order as decimal values each followed by
// a comma, then hashed with BLAKE2b-256 and hex encoded.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"svw.info/bingo/internal/domain"
)

// Blake2b fingerprints cards with BLAKE2b-256.
type Blake2b struct{}

// New checks the digest is usable. A failure here means duplicate cards
// cannot be detected and callers must treat it as fatal.
func New() (*Blake2b, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: blake2b unavailable: %w", err)
	}
	if h.Size() != blake2b.Size256 {
		return nil, fmt.Errorf("fingerprint: unexpected digest size %d", h.Size())
	}
	return &Blake2b{}, nil
}

// Fingerprint returns the hex digest of c.
func (b *Blake2b) Fingerprint(c *domain.Card) domain.Fingerprint {
	sum := blake2b.Sum256(Encode(c))
	return domain.Fingerprint(hex.EncodeToString(sum[:]))
}

// Encode returns the canonical byte form hashed by Fingerprint.
func Encode(c *domain.Card) []byte {
	buf := make([]byte, 0, domain.Size*domain.Size*3)
	for r := 0; r < domain.Size; r++ {
		for col := 0; col < domain.Size; col++ {
			buf = strconv.AppendInt(buf, int64(c.Values[r][col]), 10)
			buf = append(buf, ',')
		}
	}
	return buf
}
