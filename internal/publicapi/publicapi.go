// Package publicapi serves the guest-facing menu. No authentication: these
// endpoints back the QR-code menu pages and must keep working when the
// remote database is down, degrading to the local mirror.
package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/menu"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/metrics"
)

func Register() {
	webserver.PubGET("/menu", getMenu)
	webserver.PubGET("/venue", getVenue)
	webserver.PubGET("/promotions", getPromotions)
}

// getMenu renders one public menu page. Food and alcohol rows are fetched
// concurrently; a failed fetch drops only its own side, and guests only
// see an error when both sides fail.
func getMenu(c echo.Context) error {
	view := menu.View(c.QueryParam("view"))
	if view == "" {
		view = menu.ViewFood
	}
	if view != menu.ViewFood && view != menu.ViewDrinks {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"view must be food or drinks", nil)
	}

	actx := webserver.AppCtx()
	ctx := c.Request().Context()

	var (
		foods    []domain.FoodItem
		alcohols []domain.AlcoholItem
		foodErr  error
		alcErr   error
	)
	// Errors are collected per fetch instead of returned, so one failure
	// never cancels the sibling query.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		foodErr = actx.DB().WithContext(gctx).
			Order("id").Find(&foods).Error
		return nil
	})
	g.Go(func() error {
		alcErr = actx.DB().WithContext(gctx).
			Order("id").Find(&alcohols).Error
		return nil
	})
	_ = g.Wait()

	if foodErr != nil && alcErr != nil {
		zap.L().Error("public menu fetch failed",
			zap.Error(foodErr), zap.NamedError("alcohol", alcErr))
		return webserver.Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Menu is temporarily unavailable", nil)
	}
	if foodErr != nil {
		zap.L().Warn("food fetch failed, serving drinks only", zap.Error(foodErr))
	}
	if alcErr != nil {
		zap.L().Warn("alcohol fetch failed, serving food only", zap.Error(alcErr))
	}

	var entries []menu.Entry
	switch view {
	case menu.ViewFood:
		entries = menu.FoodEntries(foods)
	case menu.ViewDrinks:
		entries = menu.AlcoholEntries(alcohols)
	}

	promos, err := actx.PromoRepo().List(ctx)
	if err != nil {
		// List already falls back to the local mirror; a hard error here
		// means both tiers missed, and the menu still renders.
		zap.L().Warn("promotion fetch failed", zap.Error(err))
		promos = nil
	}
	active := menu.ActiveOnly(menu.MergePresets(promos))

	f := menu.Filter{
		Query:        c.QueryParam("q"),
		Category:     c.QueryParam("category"),
		Diet:         c.QueryParam("diet"),
		Availability: menu.AvailOnly,
	}
	mv := menu.BuildMenuView(view, entries, active, f)

	venue, _ := actx.VenueRepo().Get(ctx)

	metrics.RecordMenuView(string(view))
	return webserver.OK(c, map[string]interface{}{
		"view":       mv.View,
		"buckets":    mv.Buckets,
		"categories": mv.Categories,
		"promotions": mv.Promotions,
		"total":      mv.Total,
		"venue":      venue,
	})
}

func getVenue(c echo.Context) error {
	venue, err := webserver.AppCtx().VenueRepo().Get(c.Request().Context())
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to load venue settings", nil)
	}
	return webserver.OK(c, venue)
}

func getPromotions(c echo.Context) error {
	actx := webserver.AppCtx()
	promos, err := actx.PromoRepo().List(c.Request().Context())
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to load promotions", nil)
	}
	return webserver.OK(c, menu.ActiveOnly(menu.MergePresets(promos)))
}
