package domain

import "time"

// Car is a vehicle in the rental inventory. Year is kept verbatim as entered.
type Car struct {
	ID          int32     `json:"id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        string    `json:"year"`
	IsActive    bool      `json:"is_active"`
	PricePerDay float64   `json:"price_per_day"`
	Location    string    `json:"location,omitempty"`
	FuelType    string    `json:"fuel_type,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// CarInput carries the scalar fields of a create or edit request.
// Every field is written on edit; there is no partial update.
type CarInput struct {
	Brand       string  `json:"brand" validate:"required,notblank"`
	Model       string  `json:"model" validate:"required,notblank"`
	Year        string  `json:"year" validate:"required,notblank"`
	IsActive    bool    `json:"is_active"`
	PricePerDay float64 `json:"price_per_day" validate:"gte=0"`
	Location    string  `json:"location"`
	FuelType    string  `json:"fuel_type"`
	Description string  `json:"description"`
}

// Apply overwrites the car's scalar fields. ImageURL is left alone.
func (in CarInput) Apply(c *Car) {
	c.Brand = in.Brand
	c.Model = in.Model
	c.Year = in.Year
	c.IsActive = in.IsActive
	c.PricePerDay = in.PricePerDay
	c.Location = in.Location
	c.FuelType = in.FuelType
	c.Description = in.Description
}

// ImageUpload is an uploaded photo. Filename is only used for its extension.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Empty reports whether there is nothing to attach.
func (u *ImageUpload) Empty() bool {
	return u == nil || len(u.Data) == 0
}
