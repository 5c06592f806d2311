// Package store wraps the persistence layer. Each collection gets its own
// store type holding the shared *gorm.DB; the handle is opened once in main
// and passed in explicitly, never kept as package state.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

// Stores bundles all collection stores over one database handle.
type Stores struct {
	db        *gorm.DB
	Orders    *OrderStore
	Payments  *PaymentStore
	Requests  *RequestStore
	Users     *UserStore
	Meals     *MealStore
	Reviews   *ReviewStore
	Favorites *FavoriteStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		db:        db,
		Orders:    &OrderStore{db: db},
		Payments:  &PaymentStore{db: db},
		Requests:  &RequestStore{db: db},
		Users:     &UserStore{db: db},
		Meals:     &MealStore{db: db},
		Reviews:   &ReviewStore{db: db},
		Favorites: &FavoriteStore{db: db},
	}
}

// Transaction runs fn against stores bound to a single database transaction.
// fn returning an error rolls everything back.
func (s *Stores) Transaction(ctx context.Context, fn func(tx *Stores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Open connects to the database and migrates all collections.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Review{},
		&models.Favorite{},
		&models.Order{},
		&models.Payment{},
		&models.RoleRequest{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// wrapDB maps driver-level failures onto the error taxonomy. Record misses
// become NotFound, unique-index violations Conflict, everything else
// (including timeouts) the retryable Unavailable.
func wrapDB(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.KindNotFound, message, err)
	case isUniqueViolation(err):
		return apperr.Wrap(apperr.KindConflict, message, err)
	default:
		return apperr.Wrap(apperr.KindUnavailable, message, err)
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
