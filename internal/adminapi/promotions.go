package adminapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menuboard/menuboard/internal/menu"
	"github.com/menuboard/menuboard/internal/store"
	"github.com/menuboard/menuboard/internal/webserver"
)

func registerPromotionRoutes() {
	webserver.ApiGET("/promotions", listPromotions)
	webserver.ApiPUT("/promotions/:key/active", setPromotionActive)
}

// listPromotions returns the preset catalogue overlaid with the stored
// active flags, so the admin panel always shows the full set.
func listPromotions(c echo.Context) error {
	rows, err := getAppCtx(c).PromoRepo().List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query promotions", err.Error())
	}
	return ok(c, menu.MergePresets(rows))
}

func setPromotionActive(c echo.Context) error {
	key := c.Param("key")
	var payload struct {
		Active bool `json:"active"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse promotion toggle", err.Error())
	}

	actx := getAppCtx(c)
	row, localOnly, err := actx.PromoRepo().SetActive(c.Request().Context(), key, payload.Active)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown promotion key", err.Error())
	}

	writeAuditLog(c, "promotion.toggle", fmt.Sprintf("set promotion %s active=%v", key, payload.Active))
	actx.Bus().Publish(store.TopicPromotionToggled)

	// local_only tells the admin panel the change is cached but not yet in
	// the remote store; the cron refresh reconciles once it is reachable.
	return ok(c, map[string]interface{}{
		"promotion":  row,
		"local_only": localOnly,
	})
}
