package service

import (
	"context"
	"fmt"
	"path/filepath"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/query"
	"autorental-backend/internal/repository"
	"autorental-backend/internal/storage"
)

type inventoryService struct {
	carRepo repository.CarRepository
	blobs   storage.BlobStore
}

func NewInventoryService(carRepo repository.CarRepository, blobs storage.BlobStore) InventoryService {
	return &inventoryService{
		carRepo: carRepo,
		blobs:   blobs,
	}
}

func (s *inventoryService) ListCars(ctx context.Context, filter query.CarFilter, sort query.Sort, page query.Page) (*query.Result[domain.Car], error) {
	logger.EnterMethod("InventoryService.ListCars", "search", filter.Search, "activeOnly", filter.ActiveOnly, "page", page.Number)

	plan := query.NewCarPlan(filter, sort, page)
	cars, total, err := s.carRepo.List(ctx, plan)
	if err != nil {
		err = storeErr("list cars", err)
		logger.ExitMethodWithError("InventoryService.ListCars", err)
		return nil, err
	}

	res := query.NewResult(cars, total, plan.Page)
	logger.ExitMethod("InventoryService.ListCars", "total", total, "returned", len(res.Items))
	return res, nil
}

func (s *inventoryService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(fmt.Sprintf("get car %d", id), err)
	}
	return car, nil
}

// GetActiveCar hides inactive cars from the public catalog as not found.
func (s *inventoryService) GetActiveCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}
	if !car.IsActive {
		return nil, fmt.Errorf("car %d is inactive: %w", id, domain.ErrNotFound)
	}
	return car, nil
}

func (s *inventoryService) CreateCar(ctx context.Context, in domain.CarInput, image *domain.ImageUpload) (*domain.Car, error) {
	logger.EnterMethod("InventoryService.CreateCar", "brand", in.Brand, "model", in.Model, "withImage", !image.Empty())

	if ve := validateInput(in); ve != nil {
		logger.ExitMethodWithError("InventoryService.CreateCar", ve)
		return nil, ve
	}

	car := &domain.Car{}
	in.Apply(car)
	if err := s.attach(ctx, car, image); err != nil {
		logger.ExitMethodWithError("InventoryService.CreateCar", err)
		return nil, err
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		err = storeErr("create car", err)
		logger.ExitMethodWithError("InventoryService.CreateCar", err)
		return nil, err
	}

	logger.ExitMethod("InventoryService.CreateCar", "carID", car.ID)
	return car, nil
}

func (s *inventoryService) UpdateCar(ctx context.Context, id int32, in domain.CarInput, image *domain.ImageUpload) (*domain.Car, error) {
	logger.EnterMethod("InventoryService.UpdateCar", "carID", id, "withImage", !image.Empty())

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		err = storeErr(fmt.Sprintf("get car %d", id), err)
		logger.ExitMethodWithError("InventoryService.UpdateCar", err)
		return nil, err
	}

	if ve := validateInput(in); ve != nil {
		logger.ExitMethodWithError("InventoryService.UpdateCar", ve)
		return nil, ve
	}

	in.Apply(car)
	if err := s.attach(ctx, car, image); err != nil {
		logger.ExitMethodWithError("InventoryService.UpdateCar", err)
		return nil, err
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		err = storeErr(fmt.Sprintf("update car %d", id), err)
		logger.ExitMethodWithError("InventoryService.UpdateCar", err)
		return nil, err
	}

	logger.ExitMethod("InventoryService.UpdateCar", "carID", id)
	return car, nil
}

// DeleteCar removes the car outright. Rentals that still reference it keep
// their car id and show an empty brand in the ledger.
func (s *inventoryService) DeleteCar(ctx context.Context, id int32) error {
	logger.EnterMethod("InventoryService.DeleteCar", "carID", id)
	if err := s.carRepo.Delete(ctx, id); err != nil {
		err = storeErr(fmt.Sprintf("delete car %d", id), err)
		logger.ExitMethodWithError("InventoryService.DeleteCar", err)
		return err
	}
	logger.ExitMethod("InventoryService.DeleteCar", "carID", id)
	return nil
}

// attach stores the uploaded image and points the car at it. It must run
// before the car is saved; on failure the car is left untouched. An empty
// upload keeps the current ImageURL.
func (s *inventoryService) attach(ctx context.Context, car *domain.Car, image *domain.ImageUpload) error {
	if image.Empty() {
		return nil
	}
	url, err := s.blobs.Store(ctx, image.Data, filepath.Ext(image.Filename))
	if err != nil {
		return blobErr(err)
	}
	car.ImageURL = &url
	return nil
}
