package service

import (
	"context"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/query"
)

// InventoryService manages the car fleet and the public catalog.
type InventoryService interface {
	ListCars(ctx context.Context, filter query.CarFilter, sort query.Sort, page query.Page) (*query.Result[domain.Car], error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	GetActiveCar(ctx context.Context, id int32) (*domain.Car, error)
	CreateCar(ctx context.Context, in domain.CarInput, image *domain.ImageUpload) (*domain.Car, error)
	UpdateCar(ctx context.Context, id int32, in domain.CarInput, image *domain.ImageUpload) (*domain.Car, error)
	DeleteCar(ctx context.Context, id int32) error
}

// RentalService runs the rental ledger and the rental status lifecycle.
type RentalService interface {
	ListRentals(ctx context.Context, filter query.RentalFilter, sort query.Sort, page query.Page) (*query.Result[domain.RentalRow], error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	CreateRental(ctx context.Context, in domain.RentalInput) (*domain.Rental, error)
	EditRental(ctx context.Context, id int32, in domain.RentalInput) (*domain.Rental, error)
	ChangeStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int32) error
}

type StatsService interface {
	Dashboard(ctx context.Context) *domain.DashboardStats
}

// BootstrapService seeds the admin account at startup.
type BootstrapService interface {
	EnsureAdmin(ctx context.Context, email, password string) error
}
