package uid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ErrStableNodeIdentityUnavailable indicates no stable node identity is available.
var ErrStableNodeIdentityUnavailable = errors.New("uid: cannot determine stable node identity (machine-id/hostname unavailable)")

// ObjectIDGenerator mints 64-char hex ids from 32 bytes laid out as
// timestamp | node | pid | counter | random. The prefix makes ids roughly
// sortable by creation time and collision-safe across replicas; the random
// tail makes them unguessable, which is what lets them serve as session ids.
type ObjectIDGenerator struct {
	nodeID  [6]byte
	pid     uint16
	counter uint32
}

// NewObjectIDGenerator creates a generator bound to this host's stable
// identity. It fails when neither machine-id nor hostname is available.
func NewObjectIDGenerator() (*ObjectIDGenerator, error) {
	g := &ObjectIDGenerator{pid: uint16(os.Getpid())}

	src, err := stableNodeIdentity()
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(src))
	copy(g.nodeID[:], sum[:6])

	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	g.counter = binary.BigEndian.Uint32(seed[:])

	return g, nil
}

func stableNodeIdentity() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}
	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}
	return "", ErrStableNodeIdentityUnavailable
}

// Generate returns a new 64-char hex id.
func (g *ObjectIDGenerator) Generate() string {
	var raw [32]byte

	// 6-byte millisecond timestamp, big-endian
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(time.Now().UnixMilli()))
	copy(raw[0:6], ts[2:8])

	// 6-byte node id, 2-byte pid, 4-byte counter
	copy(raw[6:12], g.nodeID[:])
	binary.BigEndian.PutUint16(raw[12:14], g.pid)
	binary.BigEndian.PutUint32(raw[14:18], atomic.AddUint32(&g.counter, 1))

	// 14 random bytes; on failure fall back to hashing the deterministic prefix
	if _, err := rand.Read(raw[18:]); err != nil {
		sum := sha256.Sum256(raw[:18])
		copy(raw[18:], sum[:14])
	}

	var out [64]byte
	hex.Encode(out[:], raw[:])
	return string(out[:])
}
