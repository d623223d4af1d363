package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/store"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/common"
)

type foodPayload struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Vegetarian  bool     `json:"vegetarian"`
	Available   bool     `json:"available"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

type bulkAvailabilityPayload struct {
	IDs       []int64 `json:"ids" validate:"required,min=1"`
	Available bool    `json:"available"`
}

func registerFoodRoutes() {
	webserver.ApiGET("/food", listFood)
	webserver.ApiGET("/food/categories", listFoodCategories)
	webserver.ApiGET("/food/:id", getFood)
	webserver.ApiPOST("/food", createFood)
	webserver.ApiPUT("/food/availability", bulkFoodAvailability)
	webserver.ApiPUT("/food/:id", updateFood)
	webserver.ApiPUT("/food/:id/availability", toggleFoodAvailability)
	webserver.ApiDELETE("/food/:id", deleteFood)
}

var foodSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"category":   "category",
	"price":      "price",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func listFood(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.FoodItem{})
	db = likeName(db, strings.TrimSpace(c.QueryParam("q")))
	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		db = db.Where("category = ?", cat)
	}
	if avail, set := boolQueryParam(c, "available"); set {
		db = db.Where("available = ?", avail)
	}
	switch c.QueryParam("diet") {
	case "veg":
		db = db.Where("vegetarian = ?", true)
	case "nonveg":
		db = db.Where("vegetarian = ?", false)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count food items", err.Error())
	}
	var rows []domain.FoodItem
	if err := db.Order(parseSort(c, foodSortColumns)).
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query food items", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

// listFoodCategories returns the preset list plus any categories already in
// use, so the admin form can offer both.
func listFoodCategories(c echo.Context) error {
	var used []string
	if err := GetDB(c).Model(&domain.FoodItem{}).
		Distinct("category").
		Where("category != ''").
		Order("category").
		Pluck("category", &used).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query categories", err.Error())
	}
	return ok(c, mergeCategories(domain.PresetFoodCategories, used))
}

func getFood(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid food item ID", nil)
	}
	var item domain.FoodItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Food item not found", nil)
	}
	return ok(c, item)
}

func createFood(c echo.Context) error {
	var payload foodPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse food item", err.Error())
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Name is required", nil)
	}
	if payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must not be negative", nil)
	}

	now := time.Now()
	item := domain.FoodItem{
		ID:          common.UUIDint64(),
		Name:        payload.Name,
		Category:    strings.TrimSpace(payload.Category),
		Description: strings.TrimSpace(payload.Description),
		Price:       payload.Price,
		Vegetarian:  payload.Vegetarian,
		Available:   payload.Available,
		Tags:        common.JoinNonEmpty(payload.Tags),
		Featured:    payload.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := GetDB(c).Create(&item).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create food item", err.Error())
	}
	writeAuditLog(c, "food.create", fmt.Sprintf("created food item %s (%d)", item.Name, item.ID))
	publishMenuChanged(c)
	return ok(c, item)
}

func updateFood(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid food item ID", nil)
	}
	var item domain.FoodItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Food item not found", nil)
	}

	var payload foodPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse food item", err.Error())
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Name is required", nil)
	}
	if payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must not be negative", nil)
	}

	item.Name = payload.Name
	item.Category = strings.TrimSpace(payload.Category)
	item.Description = strings.TrimSpace(payload.Description)
	item.Price = payload.Price
	item.Vegetarian = payload.Vegetarian
	item.Available = payload.Available
	item.Tags = common.JoinNonEmpty(payload.Tags)
	item.Featured = payload.Featured
	item.UpdatedAt = time.Now()
	if err := GetDB(c).Save(&item).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update food item", err.Error())
	}
	writeAuditLog(c, "food.update", fmt.Sprintf("updated food item %s (%d)", item.Name, item.ID))
	publishMenuChanged(c)
	return ok(c, item)
}

// toggleFoodAvailability sets availability to the requested value, so
// repeating the call is a no-op rather than a flip.
func toggleFoodAvailability(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid food item ID", nil)
	}
	var payload struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse availability", err.Error())
	}
	var item domain.FoodItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Food item not found", nil)
	}
	if err := GetDB(c).Model(&item).
		Updates(map[string]interface{}{"available": payload.Available, "updated_at": time.Now()}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update availability", err.Error())
	}
	item.Available = payload.Available
	writeAuditLog(c, "food.availability", fmt.Sprintf("set food item %d available=%v", id, payload.Available))
	publishMenuChanged(c)
	return ok(c, item)
}

// bulkFoodAvailability updates all requested rows in one transaction;
// a missing ID rolls the whole batch back.
func bulkFoodAvailability(c echo.Context) error {
	var payload bulkAvailabilityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse bulk request", err.Error())
	}
	if len(payload.IDs) == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "At least one item ID is required", nil)
	}

	affected, err := bulkSetAvailability(c, &domain.FoodItem{}, payload.IDs, payload.Available)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Bulk availability update failed", err.Error())
	}
	writeAuditLog(c, "food.availability.bulk",
		fmt.Sprintf("set %d food items available=%v", affected, payload.Available))
	publishMenuChanged(c)
	return ok(c, map[string]interface{}{"affected": affected, "available": payload.Available})
}

func deleteFood(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid food item ID", nil)
	}
	result := GetDB(c).Where("id = ?", id).Delete(&domain.FoodItem{})
	if result.Error != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete food item", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Food item not found", nil)
	}
	writeAuditLog(c, "food.delete", fmt.Sprintf("deleted food item %d", id))
	publishMenuChanged(c)
	return ok(c, map[string]interface{}{"deleted": id})
}

func publishMenuChanged(c echo.Context) {
	getAppCtx(c).Bus().Publish(store.TopicMenuChanged)
}

func mergeCategories(presets, used []string) []string {
	seen := make(map[string]bool, len(presets))
	out := make([]string, 0, len(presets)+len(used))
	for _, cat := range presets {
		seen[strings.ToLower(cat)] = true
		out = append(out, cat)
	}
	for _, cat := range used {
		if !seen[strings.ToLower(cat)] {
			seen[strings.ToLower(cat)] = true
			out = append(out, cat)
		}
	}
	return out
}
