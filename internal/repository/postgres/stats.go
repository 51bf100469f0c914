package postgres

import (
	"context"
	"database/sql"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountCars(ctx context.Context) (int64, int64, error) {
	var total, active int64
	query := `SELECT count(*), count(*) FILTER (WHERE is_active) FROM cars`
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *statsRepository) CountRentals(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals`).Scan(&n)
	return n, err
}

func (r *statsRepository) CountRentalsByStatus(ctx context.Context) (map[domain.RentalStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM rentals GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.RentalStatus]int64, len(domain.RentalStatuses))
	for _, st := range domain.RentalStatuses {
		counts[st] = 0
	}
	for rows.Next() {
		var st domain.RentalStatus
		var n int64
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		counts[st] = n
	}
	return counts, rows.Err()
}

// CountRentalsSpanning counts rentals whose date range includes day.
func (r *statsRepository) CountRentalsSpanning(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	d := day.Format("2006-01-02")
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE start_date <= $1 AND end_date >= $1`, d).Scan(&n)
	return n, err
}
