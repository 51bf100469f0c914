// Package postgres implements the repositories on PostgreSQL via lib/pq.
//
// Tables:
//
//	cars(id, brand, model, year, is_active, price_per_day, location, fuel_type,
//	     description, image_url, created_on, updated_on)
//	rentals(id, car_id, start_date, end_date, price_per_day, status,
//	        created_on, updated_on)
//	users(id, email, password_hash, roles text[], created_on)
package postgres

import (
	"database/sql"
	"errors"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.RentalRepository
	repository.UserRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		CarRepository:    NewCarRepository(db),
		RentalRepository: NewRentalRepository(db),
		UserRepository:   NewUserRepository(db),
		StatsRepository:  NewStatsRepository(db),
	}
}

// DB exposes the pool for health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// expectOne maps a zero-row UPDATE or DELETE to domain.ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
