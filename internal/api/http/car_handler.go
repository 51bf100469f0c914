package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/query"
	"autorental-backend/internal/service"
)

// CarHandler serves the public catalog and the admin inventory screens.
type CarHandler struct {
	svc            service.InventoryService
	pageSize       int
	maxUploadBytes int64
}

func NewCarHandler(svc service.InventoryService, pageSize int, maxUploadBytes int64) *CarHandler {
	return &CarHandler{svc: svc, pageSize: pageSize, maxUploadBytes: maxUploadBytes}
}

// carForm is the submitted car form, kept as text so it can be echoed back.
type carForm struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	IsActive    string `json:"is_active,omitempty"`
	PricePerDay string `json:"price_per_day,omitempty"`
	Location    string `json:"location,omitempty"`
	FuelType    string `json:"fuel_type,omitempty"`
	Description string `json:"description,omitempty"`
}

func (f carForm) input() (domain.CarInput, *domain.ValidationError) {
	in := domain.CarInput{
		Brand:       strings.TrimSpace(f.Brand),
		Model:       strings.TrimSpace(f.Model),
		Year:        strings.TrimSpace(f.Year),
		IsActive:    true,
		Location:    f.Location,
		FuelType:    f.FuelType,
		Description: f.Description,
	}
	var ve domain.ValidationError
	if v := strings.TrimSpace(f.IsActive); v != "" {
		if strings.EqualFold(v, "on") {
			in.IsActive = true
		} else if b, err := strconv.ParseBool(v); err == nil {
			in.IsActive = b
		} else {
			ve.Add("is_active", "must be true or false")
		}
	}
	if v := strings.TrimSpace(f.PricePerDay); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			in.PricePerDay = p
		} else {
			ve.Add("price_per_day", "must be a number")
		}
	}
	if len(ve.Fields) > 0 {
		return in, &ve
	}
	return in, nil
}

// readCarForm parses a multipart or urlencoded car form with an optional
// "image" file.
func (h *CarHandler) readCarForm(w http.ResponseWriter, r *http.Request) (carForm, *domain.ImageUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return carForm{}, nil, err
		}
		if err := r.ParseForm(); err != nil {
			return carForm{}, nil, err
		}
	}

	form := carForm{
		Brand:       r.FormValue("brand"),
		Model:       r.FormValue("model"),
		Year:        r.FormValue("year"),
		IsActive:    r.FormValue("is_active"),
		PricePerDay: r.FormValue("price_per_day"),
		Location:    r.FormValue("location"),
		FuelType:    r.FormValue("fuel_type"),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return form, nil, nil
	}
	if err != nil {
		return form, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return form, nil, err
	}
	return form, &domain.ImageUpload{Filename: header.Filename, Data: data}, nil
}

// ListCatalog lists active cars for the public catalog.
func (h *CarHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListInventory lists all cars; ?active=true narrows it to active ones for
// rental forms.
func (h *CarHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))
	h.list(w, r, activeOnly)
}

func (h *CarHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	q := r.URL.Query()
	filter := query.CarFilter{Search: q.Get("search"), ActiveOnly: activeOnly}
	res, err := h.svc.ListCars(r.Context(), filter, query.ParseCatalogSort(q.Get("sort")), pageParams(q, h.pageSize))
	if err != nil {
		writeError(w, err, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *CarHandler) GetCatalogCar(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, h.svc.GetActiveCar)
}

func (h *CarHandler) GetInventoryCar(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, h.svc.GetCar)
}

func (h *CarHandler) get(w http.ResponseWriter, r *http.Request, load func(context.Context, int32) (*domain.Car, error)) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid car ID!")
		return
	}
	car, err := load(r.Context(), id)
	if err != nil {
		writeError(w, err, "Car not found!", nil)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, image, err := h.readCarForm(w, r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("malformed form: %v", err))
		return
	}
	in, ve := form.input()
	if ve != nil {
		writeError(w, ve, "", form)
		return
	}

	car, err := h.svc.CreateCar(r.Context(), in, image)
	if err != nil {
		writeError(w, err, "Car not found!", form)
		return
	}
	audit(r, "car.create", "carID", car.ID)
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Car added successfully!", Data: car})
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid car ID!")
		return
	}
	form, image, err := h.readCarForm(w, r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("malformed form: %v", err))
		return
	}
	in, ve := form.input()
	if ve != nil {
		writeError(w, ve, "", form)
		return
	}

	car, err := h.svc.UpdateCar(r.Context(), id, in, image)
	if err != nil {
		writeError(w, err, "Car not found!", form)
		return
	}
	audit(r, "car.update", "carID", id)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Car updated successfully!", Data: car})
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid car ID!")
		return
	}
	if err := h.svc.DeleteCar(r.Context(), id); err != nil {
		writeError(w, err, "Car not found!", nil)
		return
	}
	audit(r, "car.delete", "carID", id)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Car deleted successfully!"})
}
