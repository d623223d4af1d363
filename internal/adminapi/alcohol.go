package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/common"
)

type alcoholPayload struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Price30ml   *float64 `json:"price_30ml"`
	Price60ml   *float64 `json:"price_60ml"`
	Price90ml   *float64 `json:"price_90ml"`
	Price180ml  *float64 `json:"price_180ml"`
	PriceBottle *float64 `json:"price_bottle"`
	Available   bool     `json:"available"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

func registerAlcoholRoutes() {
	webserver.ApiGET("/alcohol", listAlcohol)
	webserver.ApiGET("/alcohol/categories", listAlcoholCategories)
	webserver.ApiGET("/alcohol/:id", getAlcohol)
	webserver.ApiPOST("/alcohol", createAlcohol)
	webserver.ApiPUT("/alcohol/availability", bulkAlcoholAvailability)
	webserver.ApiPUT("/alcohol/:id", updateAlcohol)
	webserver.ApiPUT("/alcohol/:id/availability", toggleAlcoholAvailability)
	webserver.ApiDELETE("/alcohol/:id", deleteAlcohol)
}

var alcoholSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"brand":      "brand",
	"category":   "category",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func listAlcohol(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.AlcoholItem{})
	db = likeName(db, strings.TrimSpace(c.QueryParam("q")))
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		db = db.Where("category = ?", cat)
	}
	if avail, set := boolQueryParam(c, "available"); set {
		db = db.Where("available = ?", avail)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count alcohol items", err.Error())
	}
	var rows []domain.AlcoholItem
	if err := db.Order(parseSort(c, alcoholSortColumns)).
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query alcohol items", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func listAlcoholCategories(c echo.Context) error {
	var used []string
	if err := GetDB(c).Model(&domain.AlcoholItem{}).
		Distinct("category").
		Where("category != ''").
		Order("category").
		Pluck("category", &used).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query categories", err.Error())
	}
	return ok(c, mergeCategories(domain.PresetAlcoholCategories, used))
}

func getAlcohol(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid alcohol item ID", nil)
	}
	var item domain.AlcoholItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Alcohol item not found", nil)
	}
	return ok(c, item)
}

func validateAlcoholPayload(payload *alcoholPayload) (code, msg string) {
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return "MISSING_NAME", "Name is required"
	}
	for _, price := range []*float64{
		payload.Price30ml, payload.Price60ml, payload.Price90ml,
		payload.Price180ml, payload.PriceBottle,
	} {
		if price != nil && *price < 0 {
			return "INVALID_REQUEST", "Pour prices must not be negative"
		}
	}
	return "", ""
}

func createAlcohol(c echo.Context) error {
	var payload alcoholPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse alcohol item", err.Error())
	}
	if code, msg := validateAlcoholPayload(&payload); code != "" {
		return fail(c, http.StatusBadRequest, code, msg, nil)
	}

	now := time.Now()
	item := domain.AlcoholItem{
		ID:          common.UUIDint64(),
		Name:        payload.Name,
		Brand:       strings.TrimSpace(payload.Brand),
		Category:    strings.TrimSpace(payload.Category),
		Price30ml:   payload.Price30ml,
		Price60ml:   payload.Price60ml,
		Price90ml:   payload.Price90ml,
		Price180ml:  payload.Price180ml,
		PriceBottle: payload.PriceBottle,
		Available:   payload.Available,
		Tags:        common.JoinNonEmpty(payload.Tags),
		Featured:    payload.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := GetDB(c).Create(&item).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create alcohol item", err.Error())
	}
	writeAuditLog(c, "alcohol.create", fmt.Sprintf("created alcohol item %s (%d)", item.Name, item.ID))
	publishMenuChanged(c)
	return ok(c, item)
}

func updateAlcohol(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid alcohol item ID", nil)
	}
	var item domain.AlcoholItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Alcohol item not found", nil)
	}

	var payload alcoholPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse alcohol item", err.Error())
	}
	if code, msg := validateAlcoholPayload(&payload); code != "" {
		return fail(c, http.StatusBadRequest, code, msg, nil)
	}

	item.Name = payload.Name
	item.Brand = strings.TrimSpace(payload.Brand)
	item.Category = strings.TrimSpace(payload.Category)
	item.Price30ml = payload.Price30ml
	item.Price60ml = payload.Price60ml
	item.Price90ml = payload.Price90ml
	item.Price180ml = payload.Price180ml
	item.PriceBottle = payload.PriceBottle
	item.Available = payload.Available
	item.Tags = common.JoinNonEmpty(payload.Tags)
	item.Featured = payload.Featured
	item.UpdatedAt = time.Now()
	// Save keeps nil pour prices as NULL; Updates with a struct would skip
	// them and leave stale prices behind.
	if err := GetDB(c).Save(&item).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update alcohol item", err.Error())
	}
	writeAuditLog(c, "alcohol.update", fmt.Sprintf("updated alcohol item %s (%d)", item.Name, item.ID))
	publishMenuChanged(c)
	return ok(c, item)
}

func toggleAlcoholAvailability(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid alcohol item ID", nil)
	}
	var payload struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse availability", err.Error())
	}
	var item domain.AlcoholItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Alcohol item not found", nil)
	}
	if err := GetDB(c).Model(&item).
		Updates(map[string]interface{}{"available": payload.Available, "updated_at": time.Now()}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update availability", err.Error())
	}
	item.Available = payload.Available
	writeAuditLog(c, "alcohol.availability", fmt.Sprintf("set alcohol item %d available=%v", id, payload.Available))
	publishMenuChanged(c)
	return ok(c, item)
}

func bulkAlcoholAvailability(c echo.Context) error {
	var payload bulkAvailabilityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse bulk request", err.Error())
	}
	if len(payload.IDs) == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "At least one item ID is required", nil)
	}

	affected, err := bulkSetAvailability(c, &domain.AlcoholItem{}, payload.IDs, payload.Available)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Bulk availability update failed", err.Error())
	}
	writeAuditLog(c, "alcohol.availability.bulk",
		fmt.Sprintf("set %d alcohol items available=%v", affected, payload.Available))
	publishMenuChanged(c)
	return ok(c, map[string]interface{}{"affected": affected, "available": payload.Available})
}

func deleteAlcohol(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid alcohol item ID", nil)
	}
	result := GetDB(c).Where("id = ?", id).Delete(&domain.AlcoholItem{})
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete alcohol item", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Alcohol item not found", nil)
	}
	writeAuditLog(c, "alcohol.delete", fmt.Sprintf("deleted alcohol item %d", id))
	publishMenuChanged(c)
	return ok(c, map[string]interface{}{"deleted": id})
}
