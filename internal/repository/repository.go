package repository

import (
	"context"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/query"
)

// CarRepository persists the car inventory. Missing rows are reported as
// domain.ErrNotFound.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Exists(ctx context.Context, id int32) (bool, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, plan *query.Plan) ([]domain.Car, int64, error)
}

// RentalRepository persists bookings. Update writes the whole record,
// UpdateStatus touches the status column only.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, plan *query.Plan) ([]domain.RentalRow, int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	AddRole(ctx context.Context, userID int32, role string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

// StatsRepository answers the dashboard's aggregate counts.
type StatsRepository interface {
	CountCars(ctx context.Context) (total, active int64, err error)
	CountRentals(ctx context.Context) (int64, error)
	CountRentalsByStatus(ctx context.Context) (map[domain.RentalStatus]int64, error)
	CountRentalsSpanning(ctx context.Context, day time.Time) (int64, error)
}
