package repo

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionScope runs a unit of work inside a single database transaction.
// gorm commits on a nil return and rolls back on error or panic, so no
// partial state ever escapes the callback.
type TransactionScope struct {
	db *gorm.DB
}

func NewTransactionScope(db *gorm.DB) *TransactionScope {
	return &TransactionScope{db: db}
}

func (s *TransactionScope) WithinTransaction(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}

// forUpdate adds a row-level lock to the query. SQLite has no FOR UPDATE
// syntax; it serializes writers at the database level instead, so the clause
// is omitted there.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
