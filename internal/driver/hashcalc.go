package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"jsxform/internal/format"
)

// Digest identifies a plan together with the print options it was
// rendered with.
type Digest [sha256.Size]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

func (d Digest) IsZero() bool { return d == Digest{} }

// planDigest hashes the raw plan bytes and every option that affects output.
func planDigest(content []byte, opt format.Options) Digest {
	h := sha256.New()
	_, _ = h.Write(content)

	var tail []byte
	tail = append(tail, byte(opt.Quote), boolByte(opt.OmitSemicolons))
	tail = binary.AppendVarint(tail, int64(opt.IndentWidth))
	tail = binary.AppendVarint(tail, int64(opt.LineWidth))
	_, _ = h.Write(tail)

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
