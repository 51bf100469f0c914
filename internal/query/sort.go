package query

import "strings"

// Sort is a requested ordering. Keys are matched case-insensitively against
// a SortTable; anything unknown falls back to the table's default, ascending.
type Sort struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// SortTable is the closed set of orderable columns for one entity.
type SortTable struct {
	columns    map[string]string
	defaultKey string
	// tiebreak keeps equal sort values in a stable order between requests.
	tiebreak string
}

var CarSorts = SortTable{
	columns: map[string]string{
		"brand": "brand",
		"model": "model",
		"year":  "year",
		"price": "price_per_day",
	},
	defaultKey: "brand",
	tiebreak:   "id",
}

var RentalSorts = SortTable{
	columns: map[string]string{
		"id":          "r.id",
		"brand":       "COALESCE(c.brand, '')",
		"startdate":   "r.start_date",
		"enddate":     "r.end_date",
		"priceperday": "r.price_per_day",
	},
	defaultKey: "id",
	tiebreak:   "r.id",
}

// Resolve maps s onto the table. Unknown keys become the default key ascending.
func (t SortTable) Resolve(s Sort) Sort {
	key := strings.ToLower(strings.TrimSpace(s.Key))
	if _, ok := t.columns[key]; !ok {
		return Sort{Key: t.defaultKey}
	}
	return Sort{Key: key, Desc: s.Desc}
}

// OrderBy renders the ORDER BY clause for an already resolved sort.
func (t SortTable) OrderBy(s Sort) string {
	col := t.columns[s.Key]
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	clause := " ORDER BY " + col + " " + dir
	if col != t.tiebreak {
		clause += ", " + t.tiebreak + " ASC"
	}
	return clause
}

// ParseCatalogSort reads catalog sort strings such as "year_desc" or
// "brand_asc". A bare key sorts ascending.
func ParseCatalogSort(s string) Sort {
	s = strings.ToLower(strings.TrimSpace(s))
	i := strings.LastIndex(s, "_")
	if i < 0 {
		return Sort{Key: s}
	}
	switch s[i+1:] {
	case "desc":
		return Sort{Key: s[:i], Desc: true}
	case "asc":
		return Sort{Key: s[:i]}
	}
	return Sort{Key: s}
}

// ParseLedgerSort reads the ledger's separate key and direction parameters.
// Only "desc" selects descending order.
func ParseLedgerSort(sortBy, sortOrder string) Sort {
	return Sort{
		Key:  sortBy,
		Desc: strings.EqualFold(strings.TrimSpace(sortOrder), "desc"),
	}
}
