package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Dashboard(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return today }

	t.Run("All counters", func(t *testing.T) {
		statsRepo := new(MockStatsRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewStatsServiceWithClock(statsRepo, userRepo, clock)

		statsRepo.On("CountCars", ctx).Return(int64(3), int64(2), nil)
		userRepo.On("CountByRole", ctx, domain.RoleUser).Return(int64(12), nil)
		statsRepo.On("CountRentals", ctx).Return(int64(9), nil)
		statsRepo.On("CountRentalsByStatus", ctx).Return(map[domain.RentalStatus]int64{
			domain.RentalStatusPending:   4,
			domain.RentalStatusConfirmed: 5,
		}, nil)
		statsRepo.On("CountRentalsSpanning", ctx, today).Return(int64(2), nil)

		st := svc.Dashboard(ctx)
		assert.Equal(t, int64(3), st.TotalCars)
		assert.Equal(t, int64(12), st.TotalRenters)
		assert.Equal(t, int64(9), st.TotalRentals)
		assert.Equal(t, int64(5), st.RentalsByStatus[domain.RentalStatusConfirmed])
		assert.Equal(t, int64(0), st.RentalsByStatus[domain.RentalStatusCancelled])
		assert.Equal(t, int64(2), st.ActiveToday)
		assert.Equal(t, int64(66), st.AvailabilityPercentage)
	})

	t.Run("Empty fleet", func(t *testing.T) {
		statsRepo := new(MockStatsRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewStatsServiceWithClock(statsRepo, userRepo, clock)

		statsRepo.On("CountCars", ctx).Return(int64(0), int64(0), nil)
		userRepo.On("CountByRole", ctx, domain.RoleUser).Return(int64(0), nil)
		statsRepo.On("CountRentals", ctx).Return(int64(0), nil)
		statsRepo.On("CountRentalsByStatus", ctx).Return(map[domain.RentalStatus]int64{}, nil)
		statsRepo.On("CountRentalsSpanning", ctx, today).Return(int64(0), nil)

		st := svc.Dashboard(ctx)
		assert.Equal(t, int64(0), st.AvailabilityPercentage)
	})

	t.Run("Failures degrade to zero", func(t *testing.T) {
		statsRepo := new(MockStatsRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewStatsServiceWithClock(statsRepo, userRepo, clock)

		boom := errors.New("db down")
		statsRepo.On("CountCars", ctx).Return(int64(0), int64(0), boom)
		userRepo.On("CountByRole", ctx, domain.RoleUser).Return(int64(0), boom)
		statsRepo.On("CountRentals", ctx).Return(int64(4), nil)
		statsRepo.On("CountRentalsByStatus", ctx).Return(nil, boom)
		statsRepo.On("CountRentalsSpanning", ctx, today).Return(int64(0), boom)

		st := svc.Dashboard(ctx)
		assert.Equal(t, int64(0), st.TotalCars)
		assert.Equal(t, int64(0), st.TotalRenters)
		assert.Equal(t, int64(4), st.TotalRentals)
		assert.Len(t, st.RentalsByStatus, len(domain.RentalStatuses))
		assert.Equal(t, int64(0), st.AvailabilityPercentage)
	})
}
