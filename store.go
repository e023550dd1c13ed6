package fintrack

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"
)

// BlobStore is the persistence collaborator: an opaque key-value slot
// holding the serialized ledger. Initialized once at process start,
// never torn down.
type BlobStore interface {
	Load() ([]byte, error)
	Save([]byte) error
}

// Store owns the authoritative in-memory ledger and mirrors every
// mutation to the blob store. Persistence is best-effort: a failing
// read or write is logged and swallowed, the in-memory state stays the
// source of truth for the session and is never blocked by storage
// trouble.
type Store struct {
	blob   BlobStore
	log    *logrus.Logger
	ledger *Ledger
}

// NewStore creates a store backed by the given blob store and loads the
// persisted ledger. An absent, unreadable or unparsable blob yields an
// empty ledger, never an error.
func NewStore(blob BlobStore, log *logrus.Logger) *Store {
	s := &Store{blob: blob, log: log, ledger: NewLedger()}
	s.load()
	return s
}

// Ledger returns the authoritative collection. Derived views (balances,
// filters) read it without mutating it.
func (s *Store) Ledger() *Ledger { return s.ledger }

func (s *Store) load() {
	data, err := s.blob.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.WithError(err).Warn("could not read persisted transactions, starting empty")
		}
		return
	}
	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		s.log.WithError(err).Warn("could not parse persisted transactions, starting empty")
		return
	}
	s.ledger = ledger
}

// save mirrors the current ledger to the blob store, fire and forget.
func (s *Store) save() {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, s.ledger); err != nil {
		s.log.WithError(err).Error("could not serialize transactions")
		return
	}
	if err := s.blob.Save(buf.Bytes()); err != nil {
		s.log.WithError(err).Error("could not persist transactions")
	}
}

// Add validates nothing, the caller validates; it records the
// transaction and persists.
func (s *Store) Add(tx Transaction) {
	s.ledger.Add(tx)
	s.save()
}

// Update replaces the matching transaction and persists. It reports
// false when the ID is unknown, in which case the entry is dropped.
func (s *Store) Update(tx Transaction) bool {
	ok := s.ledger.Update(tx)
	if ok {
		s.save()
	}
	return ok
}

// Remove deletes the transaction with the given ID and persists.
func (s *Store) Remove(id string) {
	s.ledger.Remove(id)
	s.save()
}

// ReplaceAll substitutes the whole collection, used by bulk import, and
// persists.
func (s *Store) ReplaceAll(txs []Transaction) {
	s.ledger.ReplaceAll(txs)
	s.save()
}
