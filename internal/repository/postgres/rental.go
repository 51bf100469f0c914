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

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (car_id, start_date, end_date, price_per_day, status, created_on, updated_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().UTC()
	rt.CreatedOn, rt.UpdatedOn = now, now
	logger.DatabaseCall("INSERT", "rentals", "car_id", rt.CarID)
	err := r.db.QueryRowContext(ctx, query, rt.CarID, rt.StartDate, rt.EndDate, rt.PricePerDay, rt.Status, rt.CreatedOn, rt.UpdatedOn).Scan(&rt.ID)
	logger.DatabaseResult("INSERT", 1, err, "table", "rentals")
	return err
}

// GetByID loads the rental together with its car, when the car still exists.
func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT r.id, r.car_id, r.start_date, r.end_date, r.price_per_day, r.status, r.created_on, r.updated_on,
	                 c.id, c.brand, c.model, c.year, c.is_active, c.price_per_day, COALESCE(c.location, ''), COALESCE(c.fuel_type, ''), COALESCE(c.description, ''), c.image_url
	          FROM rentals r LEFT JOIN cars c ON c.id = r.car_id WHERE r.id = $1`

	rt := &domain.Rental{}
	var (
		carID                           sql.NullInt32
		brand, model, year              sql.NullString
		location, fuelType, description string
		isActive                        sql.NullBool
		carPrice                        sql.NullFloat64
		imageURL                        *string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CarID, &rt.StartDate, &rt.EndDate, &rt.PricePerDay, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn,
		&carID, &brand, &model, &year, &isActive, &carPrice, &location, &fuelType, &description, &imageURL)
	if err != nil {
		return nil, notFound(err)
	}
	if carID.Valid {
		rt.Car = &domain.Car{
			ID:          carID.Int32,
			Brand:       brand.String,
			Model:       model.String,
			Year:        year.String,
			IsActive:    isActive.Bool,
			PricePerDay: carPrice.Float64,
			Location:    location,
			FuelType:    fuelType,
			Description: description,
			ImageURL:    imageURL,
		}
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET car_id=$1, start_date=$2, end_date=$3, price_per_day=$4, status=$5, updated_on=$6 WHERE id=$7`
	rt.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("UPDATE", "rentals", "id", rt.ID)
	err := expectOne(r.db.ExecContext(ctx, query, rt.CarID, rt.StartDate, rt.EndDate, rt.PricePerDay, rt.Status, rt.UpdatedOn, rt.ID))
	logger.DatabaseResult("UPDATE", 1, err, "table", "rentals")
	return err
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	query := `UPDATE rentals SET status=$1, updated_on=$2 WHERE id=$3`
	logger.DatabaseCall("UPDATE", "rentals.status", "id", id, "status", status)
	err := expectOne(r.db.ExecContext(ctx, query, status, time.Now().UTC(), id))
	logger.DatabaseResult("UPDATE", 1, err, "table", "rentals")
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	logger.DatabaseCall("DELETE", "rentals", "id", id)
	err := expectOne(r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id))
	logger.DatabaseResult("DELETE", 1, err, "table", "rentals")
	return err
}

func (r *rentalRepository) List(ctx context.Context, plan *query.Plan) ([]domain.RentalRow, int64, error) {
	from := ` FROM rentals r LEFT JOIN cars c ON c.id = r.car_id` + plan.Where()

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+from, plan.Args()...).Scan(&count); err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return nil, 0, nil
	}

	window, args := plan.Window()
	rows, err := r.db.QueryContext(ctx, `SELECT r.id, r.car_id, COALESCE(c.brand, ''), r.start_date, r.end_date, r.price_per_day, r.status`+from+plan.OrderBy()+window, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.RentalRow
	for rows.Next() {
		var rt domain.RentalRow
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.Brand, &rt.StartDate, &rt.EndDate, &rt.PricePerDay, &rt.Status); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, rows.Err()
}
