package http

import (
	"net/http"

	"autorental-backend/internal/config"
	"autorental-backend/internal/security"
	"autorental-backend/internal/service"
	"autorental-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles what the router needs. Images may be nil when the blob
// store cannot stream files back.
type Services struct {
	Inventory service.InventoryService
	Rentals   service.RentalService
	Stats     service.StatsService
	Images    storage.BlobReader
}

// RouterOptions carries request defaults from configuration.
type RouterOptions struct {
	CarPageSize    int
	RentalPageSize int
	MaxUploadBytes int64
}

// NewRouter registers every route under its security table name.
func NewRouter(svcs Services, tm security.TokenManager, opts RouterOptions) *mux.Router {
	cars := NewCarHandler(svcs.Inventory, opts.CarPageSize, opts.MaxUploadBytes)
	rentals := NewRentalHandler(svcs.Rentals, opts.RentalPageSize)
	stats := NewStatsHandler(svcs.Stats)

	router := mux.NewRouter()
	router.Use(Recoverer, RequestLogger, NewAuthMiddleware(tm).Handler)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet).Name(config.RouteHealth)

	if svcs.Images != nil {
		images := NewImageHandler(svcs.Images)
		router.HandleFunc("/"+storage.ImagePrefix+"/{name}", images.Serve).Methods(http.MethodGet).Name(config.RouteServeImage)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public read surface
	api.HandleFunc("/cars", cars.ListCatalog).Methods(http.MethodGet).Name(config.RouteListCars)
	api.HandleFunc("/cars/{id:[0-9]+}", cars.GetCatalogCar).Methods(http.MethodGet).Name(config.RouteGetCar)
	api.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet).Name(config.RouteListRentals)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentals.Get).Methods(http.MethodGet).Name(config.RouteGetRental)

	// Admin surface
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/cars", cars.ListInventory).Methods(http.MethodGet).Name(config.RouteAdminListCars)
	admin.HandleFunc("/cars", cars.Create).Methods(http.MethodPost).Name(config.RouteCreateCar)
	admin.HandleFunc("/cars/{id:[0-9]+}", cars.GetInventoryCar).Methods(http.MethodGet).Name(config.RouteAdminGetCar)
	admin.HandleFunc("/cars/{id:[0-9]+}", cars.Update).Methods(http.MethodPut).Name(config.RouteUpdateCar)
	admin.HandleFunc("/cars/{id:[0-9]+}", cars.Delete).Methods(http.MethodDelete).Name(config.RouteDeleteCar)
	admin.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost).Name(config.RouteCreateRental)
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentals.Edit).Methods(http.MethodPut).Name(config.RouteEditRental)
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentals.Delete).Methods(http.MethodDelete).Name(config.RouteDeleteRental)
	admin.HandleFunc("/rentals/{id:[0-9]+}/status", rentals.ChangeStatus).Methods(http.MethodPost).Name(config.RouteChangeStatus)
	admin.HandleFunc("/dashboard", stats.Dashboard).Methods(http.MethodGet).Name(config.RouteDashboardStats)

	return router
}
