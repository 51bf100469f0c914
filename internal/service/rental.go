package service

import (
	"context"
	"fmt"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/query"
	"autorental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, carRepo repository.CarRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
	}
}

func (s *rentalService) ListRentals(ctx context.Context, filter query.RentalFilter, sort query.Sort, page query.Page) (*query.Result[domain.RentalRow], error) {
	logger.EnterMethod("RentalService.ListRentals", "brand", filter.Brand, "sort", sort.Key, "page", page.Number)

	plan := query.NewRentalPlan(filter, sort, page)
	rows, total, err := s.rentalRepo.List(ctx, plan)
	if err != nil {
		err = storeErr("list rentals", err)
		logger.ExitMethodWithError("RentalService.ListRentals", err)
		return nil, err
	}

	res := query.NewResult(rows, total, plan.Page)
	logger.ExitMethod("RentalService.ListRentals", "total", total, "returned", len(res.Items))
	return res, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(fmt.Sprintf("get rental %d", id), err)
	}
	return rt, nil
}

// CreateRental books a car. New rentals always start Pending.
func (s *rentalService) CreateRental(ctx context.Context, in domain.RentalInput) (*domain.Rental, error) {
	logger.EnterMethod("RentalService.CreateRental", "carID", in.CarID, "start", in.StartDate, "end", in.EndDate)

	if err := s.check(ctx, in); err != nil {
		logger.ExitMethodWithError("RentalService.CreateRental", err)
		return nil, err
	}

	rt := &domain.Rental{
		CarID:       in.CarID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		PricePerDay: in.PricePerDay,
		Status:      domain.RentalStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		err = storeErr("create rental", err)
		logger.ExitMethodWithError("RentalService.CreateRental", err)
		return nil, err
	}

	logger.ExitMethod("RentalService.CreateRental", "rentalID", rt.ID)
	return rt, nil
}

// EditRental overwrites car, dates and price. The stored status is read back
// and written unchanged; only ChangeStatus moves it.
func (s *rentalService) EditRental(ctx context.Context, id int32, in domain.RentalInput) (*domain.Rental, error) {
	logger.EnterMethod("RentalService.EditRental", "rentalID", id, "carID", in.CarID)

	current, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		err = storeErr(fmt.Sprintf("get rental %d", id), err)
		logger.ExitMethodWithError("RentalService.EditRental", err)
		return nil, err
	}

	if err := s.check(ctx, in); err != nil {
		logger.ExitMethodWithError("RentalService.EditRental", err)
		return nil, err
	}

	rt := &domain.Rental{
		ID:          id,
		CarID:       in.CarID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		PricePerDay: in.PricePerDay,
		Status:      current.Status,
		CreatedOn:   current.CreatedOn,
	}
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		err = storeErr(fmt.Sprintf("update rental %d", id), err)
		logger.ExitMethodWithError("RentalService.EditRental", err)
		return nil, err
	}

	logger.ExitMethod("RentalService.EditRental", "rentalID", id, "status", rt.Status)
	return rt, nil
}

// ChangeStatus moves a rental to any status; there are no forbidden transitions.
func (s *rentalService) ChangeStatus(ctx context.Context, id int32, status domain.RentalStatus) (*domain.Rental, error) {
	logger.EnterMethod("RentalService.ChangeStatus", "rentalID", id, "status", status)

	if !status.Valid() {
		err := domain.NewValidationError("status", fmt.Sprintf("unknown rental status %q", status))
		logger.ExitMethodWithError("RentalService.ChangeStatus", err)
		return nil, err
	}

	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		err = storeErr(fmt.Sprintf("get rental %d", id), err)
		logger.ExitMethodWithError("RentalService.ChangeStatus", err)
		return nil, err
	}

	if err := s.rentalRepo.UpdateStatus(ctx, id, status); err != nil {
		err = storeErr(fmt.Sprintf("update rental %d status", id), err)
		logger.ExitMethodWithError("RentalService.ChangeStatus", err)
		return nil, err
	}
	rt.Status = status

	logger.ExitMethod("RentalService.ChangeStatus", "rentalID", id, "status", status)
	return rt, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	logger.EnterMethod("RentalService.DeleteRental", "rentalID", id)
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		err = storeErr(fmt.Sprintf("delete rental %d", id), err)
		logger.ExitMethodWithError("RentalService.DeleteRental", err)
		return err
	}
	logger.ExitMethod("RentalService.DeleteRental", "rentalID", id)
	return nil
}

// check validates the input fields and that the referenced car exists.
// Overlapping bookings of the same car are allowed.
func (s *rentalService) check(ctx context.Context, in domain.RentalInput) error {
	ve := validateInput(in)
	if in.CarID > 0 {
		exists, err := s.carRepo.Exists(ctx, in.CarID)
		if err != nil {
			return storeErr(fmt.Sprintf("check car %d", in.CarID), err)
		}
		if !exists {
			if ve == nil {
				ve = &domain.ValidationError{}
			}
			ve.Add("car_id", "car does not exist")
		}
	}
	if ve != nil {
		return ve
	}
	return nil
}
