package query

import (
	"fmt"
	"strings"
)

// Plan is a fully resolved listing query: predicates with their bind
// arguments, a validated ordering and a clamped page window.
type Plan struct {
	conds   []string
	args    []any
	Sort    Sort
	orderBy string
	Page    Page
}

func NewCarPlan(f CarFilter, s Sort, p Page) *Plan {
	b := &builder{}
	f.apply(b)
	return newPlan(b, CarSorts, s, p)
}

func NewRentalPlan(f RentalFilter, s Sort, p Page) *Plan {
	b := &builder{}
	f.apply(b)
	return newPlan(b, RentalSorts, s, p)
}

func newPlan(b *builder, table SortTable, s Sort, p Page) *Plan {
	resolved := table.Resolve(s)
	return &Plan{
		conds:   b.conds,
		args:    b.args,
		Sort:    resolved,
		orderBy: table.OrderBy(resolved),
		Page:    NewPage(p.Number, p.Size),
	}
}

// Where returns the WHERE clause, or "" when no predicate applies.
func (p *Plan) Where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// Args returns a copy of the predicate bind arguments.
func (p *Plan) Args() []any {
	out := make([]any, len(p.args))
	copy(out, p.args)
	return out
}

func (p *Plan) OrderBy() string {
	return p.orderBy
}

// Window returns the LIMIT/OFFSET clause and the full argument list
// (predicate args followed by limit and offset).
func (p *Plan) Window() (string, []any) {
	n := len(p.args)
	args := append(p.Args(), p.Page.Limit(), p.Page.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}
