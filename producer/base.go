package producer

import (
	"fmt"
	"log/slog"

	"github.com/confpipe/confpipe/store"
)

// Base is an embeddable producer half: it carries the shared object store,
// the producer's own fully-qualified id, and an optional logger. Embed it
// and add Create plus a step map:
//
//	type trainer struct {
//		producer.Base
//	}
//
//	func newTrainer(st *store.Store, oid string) producer.Producer {
//		return &trainer{Base: producer.NewBase(st, oid)}
//	}
type Base struct {
	Store  *store.Store
	OID    string
	Logger *slog.Logger
}

// NewBase returns a Base for the given store and fully-qualified id.
func NewBase(st *store.Store, oid string) Base {
	return Base{Store: st, OID: oid}
}

// WithLogger returns a copy of b with the logger set.
func (b Base) WithLogger(logger *slog.Logger) Base {
	b.Logger = logger
	return b
}

// Log returns the configured logger, or slog.Default if none was set.
func (b Base) Log() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// Lookup reads a prior section's object from the store.
func (b Base) Lookup(key string) (interface{}, bool) {
	if b.Store == nil {
		return nil, false
	}
	return b.Store.Get(key)
}

// Resolve reads a prior section's object from the store, or returns an
// error naming the missing key and this producer's id.
func (b Base) Resolve(key string) (interface{}, error) {
	obj, ok := b.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%s: object %q not in store", b.OID, key)
	}
	return obj, nil
}
