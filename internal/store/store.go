// Package store implements the entity upsert layer and pivot linker on
// top of Postgres. Every operation takes effect against the Querier the
// Store was built with, so a caller that opens a transaction and wraps
// it in a Store gets all-or-nothing semantics across every call.
package store

import (
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
	"golang.org/x/text/unicode/norm"

	"github.com/edafy/ingest-cli/internal/db"
)

// ErrNotFound signals that an operation expected a persisted row and
// found none. Callers treat it as fatal for the record's branch.
var ErrNotFound = eris.New("store: not found")

// Store exposes upsert, link, and lookup operations against a single
// session handle. Build one per transaction (store.New(tx)) or one over
// the pool for standalone reads.
type Store struct {
	q db.Querier
}

// New wraps a query handle. The handle may be a pool or an open
// transaction; the Store never begins or ends transactions itself.
func New(q db.Querier) *Store {
	return &Store{q: q}
}

// NormalizeKey canonicalizes a natural key before it is used as an
// upsert identity or match target. Keys arrive from file systems,
// extractor output, and user input with mixed Unicode forms.
func NormalizeKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// normalizeID canonicalizes an opaque identifier once, at the store
// boundary. Identifiers originate both from fresh inserts and from
// user-selected existing entities; both forms collapse to the same
// trimmed string identity here and nowhere else.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// wrapQuery classifies a query error: no rows becomes ErrNotFound, all
// other failures are persistence errors fatal to the run.
func wrapQuery(err error, op string) error {
	if err == nil {
		return nil
	}
	if eris.Is(err, pgx.ErrNoRows) {
		return eris.Wrap(ErrNotFound, op)
	}
	return eris.Wrap(err, op)
}
