// Package rng derives deterministic uniform draws from seed strings.
package rng

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/frand"
)

// chachaRounds is the round count handed to frand; 8, 12 and 20 are allowed.
const chachaRounds = 12

// bufSize is the keystream buffer of each generator. A draw needs one word.
const bufSize = 64

// Hashed turns a seed string into a ChaCha key and draws from it.
// The zero value is ready to use.
type Hashed struct{}

// Range returns a uniform integer in [lo, hi) for seed. If hi <= lo it
// returns lo.
func (Hashed) Range(seed string, lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	g := frand.NewCustom(Key(seed), bufSize, chachaRounds)
	return lo + uint32(g.Uint64n(uint64(hi-lo)))
}

// Key expands seed into a 32-byte key by hashing it under four lanes.
func Key(seed string) []byte {
	key := make([]byte, 32)
	d := xxhash.New()
	for lane := range 4 {
		d.Reset()
		_, _ = d.Write([]byte{byte(lane)})
		_, _ = d.WriteString(seed)
		binary.LittleEndian.PutUint64(key[lane*8:], d.Sum64())
	}
	return key
}
