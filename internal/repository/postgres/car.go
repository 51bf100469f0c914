package postgres

import (
	"context"
	"database/sql"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/query"
	"autorental-backend/internal/repository"
)

const carColumns = `id, brand, model, year, is_active, price_per_day, COALESCE(location, ''), COALESCE(fuel_type, ''), COALESCE(description, ''), image_url, created_on, updated_on`

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCar(s scanner, c *domain.Car) error {
	return s.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.IsActive, &c.PricePerDay, &c.Location, &c.FuelType, &c.Description, &c.ImageURL, &c.CreatedOn, &c.UpdatedOn)
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (brand, model, year, is_active, price_per_day, location, fuel_type, description, image_url, created_on, updated_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now().UTC()
	c.CreatedOn, c.UpdatedOn = now, now
	logger.DatabaseCall("INSERT", "cars", "brand", c.Brand, "model", c.Model)
	err := r.db.QueryRowContext(ctx, query, c.Brand, c.Model, c.Year, c.IsActive, c.PricePerDay, c.Location, c.FuelType, c.Description, c.ImageURL, c.CreatedOn, c.UpdatedOn).Scan(&c.ID)
	logger.DatabaseResult("INSERT", 1, err, "table", "cars")
	return err
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	if err := scanCar(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *carRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM cars WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET brand=$1, model=$2, year=$3, is_active=$4, price_per_day=$5, location=$6, fuel_type=$7, description=$8, image_url=$9, updated_on=$10 WHERE id=$11`
	c.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("UPDATE", "cars", "id", c.ID)
	err := expectOne(r.db.ExecContext(ctx, query, c.Brand, c.Model, c.Year, c.IsActive, c.PricePerDay, c.Location, c.FuelType, c.Description, c.ImageURL, c.UpdatedOn, c.ID))
	logger.DatabaseResult("UPDATE", 1, err, "table", "cars")
	return err
}

// Delete removes the row outright. Rentals that still reference the car are
// not checked.
func (r *carRepository) Delete(ctx context.Context, id int32) error {
	logger.DatabaseCall("DELETE", "cars", "id", id)
	err := expectOne(r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id))
	logger.DatabaseResult("DELETE", 1, err, "table", "cars")
	return err
}

func (r *carRepository) List(ctx context.Context, plan *query.Plan) ([]domain.Car, int64, error) {
	from := ` FROM cars` + plan.Where()

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+from, plan.Args()...).Scan(&count); err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return nil, 0, nil
	}

	window, args := plan.Window()
	rows, err := r.db.QueryContext(ctx, `SELECT `+carColumns+from+plan.OrderBy()+window, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, 0, err
		}
		cars = append(cars, c)
	}
	return cars, count, rows.Err()
}
