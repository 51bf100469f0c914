package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/query"

	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

// pathID reads the {id} route variable.
func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// pageParams reads page and page_size. An absent size uses def; present
// values below 1 are clamped by query.NewPage.
func pageParams(q url.Values, def int) query.Page {
	number := intParam(q, "page", 1)
	size := intParam(q, "page_size", def)
	return query.NewPage(number, size)
}

// intParam returns def when the parameter is absent or not a number.
func intParam(q url.Values, key string, def int) int {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ledgerFilter reads the rental listing filters. Malformed values are
// reported as field errors.
func ledgerFilter(q url.Values) (query.RentalFilter, *domain.ValidationError) {
	var (
		f  query.RentalFilter
		ve domain.ValidationError
	)
	if v := strings.TrimSpace(q.Get("car_id")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			id := int32(n)
			f.CarID = &id
		} else {
			ve.Add("car_id", "must be a number")
		}
	}
	f.Brand = q.Get("brand")
	f.StartFrom = dateParam(q, "start_date", &ve)
	f.EndTo = dateParam(q, "end_date", &ve)
	f.PriceMin = floatParam(q, "price_min", &ve)
	f.PriceMax = floatParam(q, "price_max", &ve)
	if len(ve.Fields) > 0 {
		return f, &ve
	}
	return f, nil
}

func dateParam(q url.Values, key string, ve *domain.ValidationError) *time.Time {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		ve.Add(key, "must be a date in YYYY-MM-DD form")
		return nil
	}
	return &t
}

func floatParam(q url.Values, key string, ve *domain.ValidationError) *float64 {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		ve.Add(key, "must be a number")
		return nil
	}
	return &f
}
