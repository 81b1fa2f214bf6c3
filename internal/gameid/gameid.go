// Package gameid generates sortable hand identifiers: a UUIDv7 written as 26
// characters of lowercase Crockford base32, the same shape TypeID uses.
package gameid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Crockford base32, lowercase. No i, l, o or u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const idLength = 26

// Generator mints IDs from a clock and an entropy source.
type Generator struct {
	clock   quartz.Clock
	entropy io.Reader
}

// NewGenerator returns a generator. A nil clock uses wall time and a nil
// entropy source uses crypto/rand.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// Generate returns a new ID using wall time and crypto/rand.
func Generate() (string, error) {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a new ID. IDs minted in later milliseconds sort after
// earlier ones.
func (g *Generator) Generate() (string, error) {
	var uuid [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		uuid[i] = byte(ms >> (40 - 8*i))
	}
	if _, err := io.ReadFull(g.entropy, uuid[6:]); err != nil {
		return "", fmt.Errorf("gameid: reading entropy: %w", err)
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(uuid), nil
}

// Timestamp recovers the millisecond creation time embedded in id.
func Timestamp(id string) (time.Time, error) {
	uuid, err := decode(id)
	if err != nil {
		return time.Time{}, err
	}
	var ms int64
	for i := range 6 {
		ms = ms<<8 | int64(uuid[i])
	}
	return time.UnixMilli(ms).UTC(), nil
}

// Validate checks that id is 26 base32 characters encoding at most 128 bits.
func Validate(id string) error {
	_, err := decode(id)
	return err
}

// encode writes the 128 bits behind two zero bits of padding so the string
// sorts like the bytes and the first character is always 0-7.
func encode(uuid [16]byte) string {
	out := make([]byte, idLength)
	for i := range out {
		var v byte
		for b := range 5 {
			v <<= 1
			bit := i*5 + b - 2
			if bit >= 0 && uuid[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

func decode(id string) ([16]byte, error) {
	var uuid [16]byte
	if len(id) != idLength {
		return uuid, fmt.Errorf("game ID must be exactly %d characters, got %d", idLength, len(id))
	}
	if id[0] > '7' {
		return uuid, fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i := range len(id) {
		v := strings.IndexByte(alphabet, id[i])
		if v < 0 {
			return uuid, fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
		for b := range 5 {
			bit := i*5 + b - 2
			if bit >= 0 && v&(0x10>>b) != 0 {
				uuid[bit/8] |= 0x80 >> (bit % 8)
			}
		}
	}
	return uuid, nil
}
