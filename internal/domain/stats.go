package domain

// DashboardStats is a snapshot of operational counts. Counters that could not
// be read are zero.
type DashboardStats struct {
	TotalCars              int64                  `json:"total_cars"`
	ActiveCars             int64                  `json:"active_cars"`
	TotalRenters           int64                  `json:"total_renters"`
	TotalRentals           int64                  `json:"total_rentals"`
	RentalsByStatus        map[RentalStatus]int64 `json:"rentals_by_status"`
	ActiveToday            int64                  `json:"active_today"`
	AvailabilityPercentage int64                  `json:"availability_percentage"`
}

// AvailabilityPercentage returns floor(active*100/total), or 0 for an empty fleet.
func AvailabilityPercentage(active, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return active * 100 / total
}
