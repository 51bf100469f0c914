package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/query"
	"autorental-backend/internal/service"
)

// RentalHandler serves the rental ledger and the admin rental lifecycle.
type RentalHandler struct {
	svc      service.RentalService
	pageSize int
}

func NewRentalHandler(svc service.RentalService, pageSize int) *RentalHandler {
	return &RentalHandler{svc: svc, pageSize: pageSize}
}

// rentalRequest is the create/edit body. A status field, if sent, is
// decoded for echoing only and never applied.
type rentalRequest struct {
	CarID       int32   `json:"car_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PricePerDay float64 `json:"price_per_day"`
	Status      string  `json:"status,omitempty"`
}

func (req rentalRequest) input() (domain.RentalInput, *domain.ValidationError) {
	in := domain.RentalInput{CarID: req.CarID, PricePerDay: req.PricePerDay}
	var ve domain.ValidationError
	in.StartDate = parseDate("start_date", req.StartDate, &ve)
	in.EndDate = parseDate("end_date", req.EndDate, &ve)
	if len(ve.Fields) > 0 {
		return in, &ve
	}
	return in, nil
}

// parseDate leaves a blank value zero so that the required rule reports it.
func parseDate(field, v string, ve *domain.ValidationError) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		ve.Add(field, "must be a date in YYYY-MM-DD form")
	}
	return t
}

type statusRequest struct {
	Status string `json:"status"`
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, ve := ledgerFilter(q)
	if ve != nil {
		writeError(w, ve, "", q)
		return
	}
	sort := query.ParseLedgerSort(q.Get("sort_by"), q.Get("sort_order"))
	res, err := h.svc.ListRentals(r.Context(), filter, sort, pageParams(q, h.pageSize))
	if err != nil {
		writeError(w, err, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid rental ID!")
		return
	}
	rt, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err, "Rental not found!", nil)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("malformed body: %v", err))
		return
	}
	in, ve := req.input()
	if ve != nil {
		writeError(w, ve, "", req)
		return
	}

	rt, err := h.svc.CreateRental(r.Context(), in)
	if err != nil {
		writeError(w, err, "Rental not found!", req)
		return
	}
	audit(r, "rental.create", "rentalID", rt.ID)
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Rental created successfully!", Data: rt})
}

func (h *RentalHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid rental ID!")
		return
	}
	var req rentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("malformed body: %v", err))
		return
	}
	in, ve := req.input()
	if ve != nil {
		writeError(w, ve, "", req)
		return
	}

	rt, err := h.svc.EditRental(r.Context(), id, in)
	if err != nil {
		writeError(w, err, "Rental not found!", req)
		return
	}
	audit(r, "rental.update", "rentalID", id)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Rental updated successfully!", Data: rt})
}

func (h *RentalHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid rental ID!")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("malformed body: %v", err))
		return
	}
	status, err := domain.ParseRentalStatus(req.Status)
	if err != nil {
		writeError(w, err, "", req)
		return
	}

	rt, err := h.svc.ChangeStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err, "Rental not found!", req)
		return
	}
	msg := fmt.Sprintf("Rental #%d status changed to %s", id, status)
	audit(r, "rental.status", "rentalID", id, "status", status)
	writeJSON(w, http.StatusOK, messageResponse{Message: msg, Data: rt})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Invalid rental ID!")
		return
	}
	if err := h.svc.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err, "Rental not found!", nil)
		return
	}
	audit(r, "rental.delete", "rentalID", id)
	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Rental #%d deleted successfully!", id)})
}
