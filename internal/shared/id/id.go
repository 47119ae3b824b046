// Package id generates the identifiers used by calculator sessions.
//
// IDs are prefixed ULIDs:
//   - sess_<ulid> identifies a calculator session
//   - rec_<ulid> identifies a history record
//
// ULIDs sort lexicographically by creation time. The generator uses
// monotonic entropy, so records appended within the same millisecond still
// sort in append order.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionID identifies a calculator session
type SessionID string

// RecordID identifies a history record
type RecordID string

const (
	SessionPrefix = "sess"
	RecordPrefix  = "rec"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy io.Reader
	now     func() time.Time
	mu      sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return NewGeneratorWithEntropy(rand.Reader)
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: ulid.Monotonic(entropy, 0),
		now:     time.Now,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewSessionID generates a new session ID
func (g *Generator) NewSessionID() SessionID {
	return SessionID(g.GenerateWithPrefix(SessionPrefix))
}

// NewRecordID generates a new history record ID
func (g *Generator) NewRecordID() RecordID {
	return RecordID(g.GenerateWithPrefix(RecordPrefix))
}

func (id SessionID) String() string { return string(id) }
func (id RecordID) String() string  { return string(id) }

// Split separates a prefixed ID into its prefix and ULID parts
func Split(id string) (prefix string, raw string) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 {
		return "", id
	}
	return id[:i], id[i+1:]
}

// IsValid checks whether the ULID part of id parses
func IsValid(id string) bool {
	_, raw := Split(id)
	_, err := ulid.Parse(raw)
	return err == nil
}

// Timestamp extracts the creation time encoded in id
func Timestamp(id string) (time.Time, error) {
	_, raw := Split(id)
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
