package query

import (
	"fmt"
	"strings"
	"time"
)

// CarFilter selects cars for the catalog and the admin inventory list.
type CarFilter struct {
	// Search matches brand, model or year by substring.
	Search string
	// ActiveOnly hides inactive cars from the public catalog.
	ActiveOnly bool
}

func (f CarFilter) apply(b *builder) {
	if f.ActiveOnly {
		b.where("is_active = TRUE")
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		p := b.arg(likePattern(term))
		b.where(fmt.Sprintf("(brand ILIKE %s OR model ILIKE %s OR year ILIKE %s)", p, p, p))
	}
}

// RentalFilter holds the ledger's independent, AND-combined predicates.
// Nil pointers and empty strings are ignored.
type RentalFilter struct {
	CarID     *int32
	Brand     string
	StartFrom *time.Time
	EndTo     *time.Time
	PriceMin  *float64
	PriceMax  *float64
}

func (f RentalFilter) apply(b *builder) {
	if f.CarID != nil {
		b.where("r.car_id = " + b.arg(*f.CarID))
	}
	if brand := strings.TrimSpace(f.Brand); brand != "" {
		b.where("c.brand ILIKE " + b.arg(likePattern(brand)))
	}
	if f.StartFrom != nil {
		b.where("r.start_date >= " + b.arg(*f.StartFrom))
	}
	if f.EndTo != nil {
		b.where("r.end_date <= " + b.arg(*f.EndTo))
	}
	if f.PriceMin != nil {
		b.where("r.price_per_day >= " + b.arg(*f.PriceMin))
	}
	if f.PriceMax != nil {
		b.where("r.price_per_day <= " + b.arg(*f.PriceMax))
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a literal substring match.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type builder struct {
	conds []string
	args  []any
}

// arg registers a bind value and returns its $n placeholder.
func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *builder) where(cond string) {
	b.conds = append(b.conds, cond)
}
