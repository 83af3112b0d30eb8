package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSessionClosed is returned when a finished session is used again.
var ErrSessionClosed = errors.New("session already closed")

// Gateway hands out transactional sessions over a GORM handle.
// It is safe for concurrent use; each Session belongs to a single caller.
type Gateway struct {
	db *gorm.DB
}

// NewGateway creates a new persistence gateway
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// DB returns the underlying GORM handle
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

// Ping checks database connectivity
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Begin acquires a session bound to a new transaction.
// Callers must defer Close so the transaction is released on every path.
func (g *Gateway) Begin(ctx context.Context) (*Session, error) {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin session: %w", tx.Error)
	}
	return &Session{tx: tx}, nil
}

// Session is a scoped unit of work over one transaction.
type Session struct {
	tx   *gorm.DB
	done bool
}

// Insert persists a new entity and fills its generated primary key
func (s *Session) Insert(value any) error {
	if s.done {
		return ErrSessionClosed
	}
	return s.tx.Create(value).Error
}

// GetByID loads the entity with the given primary key into dest.
// A missing row yields an error matched by IsNotFound.
func (s *Session) GetByID(dest any, id uint) error {
	if s.done {
		return ErrSessionClosed
	}
	return s.tx.First(dest, id).Error
}

// ListAll loads every row of dest's table ordered by primary key
func (s *Session) ListAll(dest any) error {
	if s.done {
		return ErrSessionClosed
	}
	return s.tx.Order("id").Find(dest).Error
}

// Filter loads rows whose column equals value, ordered by primary key
func (s *Session) Filter(dest any, column string, value any) error {
	if s.done {
		return ErrSessionClosed
	}
	return s.tx.Where(map[string]any{column: value}).Order("id").Find(dest).Error
}

// Update writes every column of an existing entity.
// It never inserts: a row that no longer exists yields an error matched by IsNotFound.
func (s *Session) Update(value any) error {
	if s.done {
		return ErrSessionClosed
	}
	// Select("*") writes zero values too, so the update is a full replace
	result := s.tx.Model(value).Select("*").Omit(clause.Associations).Updates(value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an entity by its primary key
func (s *Session) Delete(value any) error {
	if s.done {
		return ErrSessionClosed
	}
	return s.tx.Delete(value).Error
}

// Commit makes the session's writes durable and ends the session
func (s *Session) Commit() error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	return s.tx.Commit().Error
}

// Rollback discards the session's writes and ends the session
func (s *Session) Rollback() error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	return s.tx.Rollback().Error
}

// Close releases the session, rolling back if it was neither committed nor rolled back.
func (s *Session) Close() error {
	if s.done {
		return nil
	}
	return s.Rollback()
}

// Done reports whether the session has been committed or rolled back
func (s *Session) Done() bool {
	return s.done
}
