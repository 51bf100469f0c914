package postgres_test

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/query"
	"autorental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carCols = []string{"id", "brand", "model", "year", "is_active", "price_per_day", "location", "fuel_type", "description", "image_url", "created_on", "updated_on"}

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{Brand: "Toyota", Model: "Corolla", Year: "2020", IsActive: true, PricePerDay: 45}

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs("Toyota", "Corolla", "2020", true, 45.0, "", "", "", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, car)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), car.ID)
	assert.False(t, car.CreatedOn.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		url := "/images/cars/a.jpg"
		rows := sqlmock.NewRows(carCols).
			AddRow(1, "Honda", "Civic", "2021", true, 50.0, "Tirana", "Petrol", "", url, time.Now(), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Honda", car.Brand)
		assert.Equal(t, "2021", car.Year)
		require.NotNil(t, car.ImageURL)
		assert.Equal(t, url, *car.ImageURL)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(carCols))

		car, err := repo.GetByID(ctx, 99)
		assert.Nil(t, car)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCarRepository_UpdateAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Update writes every column", func(t *testing.T) {
		url := "/images/cars/b.png"
		car := &domain.Car{ID: 3, Brand: "BMW", Model: "X1", Year: "2019", PricePerDay: 90, ImageURL: &url}
		mock.ExpectExec("UPDATE cars SET").
			WithArgs("BMW", "X1", "2019", false, 90.0, "", "", "", url, sqlmock.AnyArg(), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, car))
	})

	t.Run("Update missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Car{ID: 404})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE id = \\$1").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("Delete missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE id = \\$1").
			WithArgs(int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 4), domain.ErrNotFound)
	})

	t.Run("Delete driver failure", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnError(errors.New("connection reset"))

		err := repo.Delete(ctx, 5)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Search on year with year_desc", func(t *testing.T) {
		plan := query.NewCarPlan(query.CarFilter{Search: "20", ActiveOnly: true}, query.ParseCatalogSort("year_desc"), query.NewPage(1, 5))

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM cars WHERE is_active = TRUE AND (brand ILIKE $1 OR model ILIKE $1 OR year ILIKE $1)")).
			WithArgs("%20%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY year DESC, id ASC LIMIT $2 OFFSET $3")).
			WithArgs("%20%", 5, 0).
			WillReturnRows(sqlmock.NewRows(carCols).
				AddRow(2, "Honda", "Civic", "2021", true, 50.0, "", "", "", nil, time.Now(), time.Now()).
				AddRow(1, "Toyota", "Corolla", "2020", true, 45.0, "", "", "", nil, time.Now(), time.Now()))

		cars, total, err := repo.List(ctx, plan)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, cars, 2)
		assert.Equal(t, "Honda", cars[0].Brand)
		assert.Equal(t, "Toyota", cars[1].Brand)
	})

	t.Run("No match skips the page query", func(t *testing.T) {
		plan := query.NewCarPlan(query.CarFilter{Search: "zzz"}, query.Sort{}, query.NewPage(1, 5))

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM cars WHERE")).
			WithArgs("%zzz%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		cars, total, err := repo.List(ctx, plan)
		assert.NoError(t, err)
		assert.Empty(t, cars)
		assert.Equal(t, int64(0), total)
	})

	t.Run("Huge page number keeps a non-negative offset", func(t *testing.T) {
		plan := query.NewCarPlan(query.CarFilter{}, query.Sort{}, query.NewPage(1<<61+1, 4))

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM cars")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY brand ASC, id ASC LIMIT $1 OFFSET $2")).
			WithArgs(4, math.MaxInt).
			WillReturnRows(sqlmock.NewRows(carCols))

		cars, total, err := repo.List(ctx, plan)
		require.NoError(t, err)
		assert.Empty(t, cars)
		assert.Equal(t, int64(3), total)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
