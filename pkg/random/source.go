// Package random provides the uniform random integer sources consumed by product sampling.
//
// Sources are injected explicitly: there is no package-level or per-goroutine generator.
// A seeded source is not safe for concurrent use; give every worker its own, or wrap a
// shared one with Locked.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	"github.com/samber/lo"
)

// Source produces arbitrary-precision integers uniformly distributed in [0, n).
type Source interface {
	// Int returns a uniform random value in [0, n). It panics if n <= 0.
	Int(n *big.Int) *big.Int
}

// Between returns a uniform random value in the half-open interval [low, high).
// It panics if high <= low.
func Between(source Source, low, high *big.Int) *big.Int {
	width := new(big.Int).Sub(high, low)
	return width.Add(low, source.Int(width))
}

type cryptoSource struct{}

// NewCryptoSource returns a source backed by the operating system's secure generator.
// It is safe for concurrent use.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Int(n *big.Int) *big.Int {
	// crypto/rand.Reader never fails
	return lo.Must(crand.Int(crand.Reader, n))
}

type seededSource struct {
	chacha *mrand.ChaCha8
	rand   *mrand.Rand
}

// NewSeededSource returns a deterministic source driven by a ChaCha8 stream.
func NewSeededSource(seed [32]byte) Source {
	chacha := mrand.NewChaCha8(seed)
	return &seededSource{chacha: chacha, rand: mrand.New(chacha)}
}

// NewSeededSourceFromUint64 returns a deterministic source whose seed is derived from a single integer.
func NewSeededSourceFromUint64(seed uint64) Source {
	return NewSeededSource(Seed(seed))
}

// Seed expands an integer into a ChaCha8 seed.
func Seed(seed uint64) [32]byte {
	var expanded [32]byte
	binary.LittleEndian.PutUint64(expanded[:8], seed)
	return expanded
}

func (source *seededSource) Int(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		panic("random: argument to Int is <= 0")
	}
	if n.IsUint64() {
		return new(big.Int).SetUint64(source.rand.Uint64N(n.Uint64()))
	}

	// Draw exactly BitLen(n) random bits and reject values >= n, so that no value is favoured.
	bitLen := n.BitLen()
	bytes := make([]byte, (bitLen+7)/8)
	topBits := uint(bitLen % 8)
	if topBits == 0 {
		topBits = 8
	}

	value := new(big.Int)
	for {
		_, _ = source.chacha.Read(bytes)
		bytes[0] &= uint8(int(1<<topBits) - 1)
		value.SetBytes(bytes)
		if value.Cmp(n) < 0 {
			return value
		}
	}
}

type lockedSource struct {
	mu     sync.Mutex
	source Source
}

// Locked serialises access to source so that it can be shared between goroutines.
func Locked(source Source) Source {
	return &lockedSource{source: source}
}

func (locked *lockedSource) Int(n *big.Int) *big.Int {
	locked.mu.Lock()
	defer locked.mu.Unlock()
	return locked.source.Int(n)
}
