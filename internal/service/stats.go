package service

import (
	"context"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepository, userRepo repository.UserRepository) StatsService {
	return NewStatsServiceWithClock(statsRepo, userRepo, time.Now)
}

// NewStatsServiceWithClock fixes what "today" means for the active-rental count.
func NewStatsServiceWithClock(statsRepo repository.StatsRepository, userRepo repository.UserRepository, now func() time.Time) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		userRepo:  userRepo,
		now:       now,
	}
}

// Dashboard reads every counter fresh. A counter that fails to load is
// logged and reported as zero; the snapshot itself never fails.
func (s *statsService) Dashboard(ctx context.Context) *domain.DashboardStats {
	logger.EnterMethod("StatsService.Dashboard")
	st := &domain.DashboardStats{RentalsByStatus: make(map[domain.RentalStatus]int64, len(domain.RentalStatuses))}
	for _, rs := range domain.RentalStatuses {
		st.RentalsByStatus[rs] = 0
	}

	total, active, err := s.statsRepo.CountCars(ctx)
	if degrade("cars", err) {
		total, active = 0, 0
	}
	st.TotalCars, st.ActiveCars = total, active

	if n, err := s.userRepo.CountByRole(ctx, domain.RoleUser); !degrade("renters", err) {
		st.TotalRenters = n
	}
	if n, err := s.statsRepo.CountRentals(ctx); !degrade("rentals", err) {
		st.TotalRentals = n
	}
	if byStatus, err := s.statsRepo.CountRentalsByStatus(ctx); !degrade("rentals_by_status", err) {
		for rs, n := range byStatus {
			st.RentalsByStatus[rs] = n
		}
	}
	if n, err := s.statsRepo.CountRentalsSpanning(ctx, s.now()); !degrade("active_today", err) {
		st.ActiveToday = n
	}

	st.AvailabilityPercentage = domain.AvailabilityPercentage(st.ActiveCars, st.TotalCars)
	logger.ExitMethod("StatsService.Dashboard", "totalCars", st.TotalCars, "totalRentals", st.TotalRentals)
	return st
}

func degrade(counter string, err error) bool {
	if err == nil {
		return false
	}
	logger.WithComponent("stats").Warn("Dashboard counter unavailable, reporting zero", "counter", counter, "error", err)
	return true
}
