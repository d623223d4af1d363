// Package adminapi exposes the authenticated management surface: menu item
// CRUD, promotion toggles, venue settings, exports, QR generation and
// system status. All routes sit behind JWT auth with the admin level.
package adminapi

// Register wires every admin route group onto the web server.
func Register() {
	registerFoodRoutes()
	registerAlcoholRoutes()
	registerPromotionRoutes()
	registerVenueRoutes()
	registerExportRoutes()
	registerQRRoutes()
	registerSystemRoutes()
}
