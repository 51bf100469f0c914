// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAdmin                       // Access token carrying the Admin role
)

// Route names shared by the router and the security table.
const (
	RouteListCars       = "cars.list"
	RouteGetCar         = "cars.get"
	RouteListRentals    = "rentals.list"
	RouteGetRental      = "rentals.get"
	RouteServeImage     = "images.get"
	RouteHealth         = "health"
	RouteAdminListCars  = "admin.cars.list"
	RouteAdminGetCar    = "admin.cars.get"
	RouteCreateCar      = "admin.cars.create"
	RouteUpdateCar      = "admin.cars.update"
	RouteDeleteCar      = "admin.cars.delete"
	RouteCreateRental   = "admin.rentals.create"
	RouteEditRental     = "admin.rentals.update"
	RouteDeleteRental   = "admin.rentals.delete"
	RouteChangeStatus   = "admin.rentals.status"
	RouteDashboardStats = "admin.dashboard"
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Public read surface
	RouteListCars:    SecurityPublic,
	RouteGetCar:      SecurityPublic,
	RouteListRentals: SecurityPublic,
	RouteGetRental:   SecurityPublic,
	RouteServeImage:  SecurityPublic,
	RouteHealth:      SecurityPublic,

	// Admin write surface
	RouteAdminListCars:  SecurityAdmin,
	RouteAdminGetCar:    SecurityAdmin,
	RouteCreateCar:      SecurityAdmin,
	RouteUpdateCar:      SecurityAdmin,
	RouteDeleteCar:      SecurityAdmin,
	RouteCreateRental:   SecurityAdmin,
	RouteEditRental:     SecurityAdmin,
	RouteDeleteRental:   SecurityAdmin,
	RouteChangeStatus:   SecurityAdmin,
	RouteDashboardStats: SecurityAdmin,
}

// GetSecurityLevel returns the level for a route. Unknown routes require admin.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAdmin
}
