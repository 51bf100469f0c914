package domain

import (
	"fmt"
	"strings"
	"time"
)

// RentalStatus is the lifecycle tag of a rental. Every status may move to
// every other status; none is terminal.
type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "Pending"
	RentalStatusConfirmed RentalStatus = "Confirmed"
	RentalStatusCancelled RentalStatus = "Cancelled"
)

// RentalStatuses lists the statuses in display order.
var RentalStatuses = []RentalStatus{
	RentalStatusPending,
	RentalStatusConfirmed,
	RentalStatusCancelled,
}

// ParseRentalStatus matches a status name case-insensitively.
func ParseRentalStatus(s string) (RentalStatus, error) {
	for _, st := range RentalStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", NewValidationError("status", fmt.Sprintf("unknown rental status %q", s))
}

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusConfirmed, RentalStatusCancelled:
		return true
	}
	return false
}

// Rental is a booking of one car. PricePerDay is the rate agreed at booking
// time and does not follow later changes to the car's price.
type Rental struct {
	ID          int32        `json:"id"`
	CarID       int32        `json:"car_id"`
	Car         *Car         `json:"car,omitempty"` // populated on detail reads
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	PricePerDay float64      `json:"price_per_day"`
	Status      RentalStatus `json:"status"`
	CreatedOn   time.Time    `json:"created_on"`
	UpdatedOn   time.Time    `json:"updated_on"`
}

// RentalRow is the ledger projection of a rental joined with its car's brand.
// Brand is empty when the car has since been deleted.
type RentalRow struct {
	ID          int32        `json:"id"`
	CarID       int32        `json:"car_id"`
	Brand       string       `json:"brand"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	PricePerDay float64      `json:"price_per_day"`
	Status      RentalStatus `json:"status"`
}

// RentalInput carries the editable fields of a rental. Status is not part of
// it: new rentals start Pending and edits keep the stored status.
type RentalInput struct {
	CarID       int32     `json:"car_id" validate:"required,gt=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	PricePerDay float64   `json:"price_per_day" validate:"gt=0"`
}
