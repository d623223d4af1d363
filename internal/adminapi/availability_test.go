package adminapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/common"
)

// Bulk and toggle semantics need a real database. Skip unless
// MENUBOARD_TEST_DSN is set.
func testContext(t *testing.T) (echo.Context, *gorm.DB) {
	t.Helper()
	dsn := os.Getenv("MENUBOARD_TEST_DSN")
	if dsn == "" {
		t.Skip("skipping admin API test: MENUBOARD_TEST_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrator().AutoMigrate(&domain.FoodItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Where("1 = 1").Delete(&domain.FoodItem{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(webserver.CtxKeyDB, db)
	return c, db
}

func seedFood(t *testing.T, db *gorm.DB, n int, available bool) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		item := domain.FoodItem{
			ID:        common.UUIDint64(),
			Name:      "Test Dish",
			Category:  "Starters",
			Price:     100,
			Available: available,
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
		ids = append(ids, item.ID)
	}
	return ids
}

// An empty ID list is rejected before any database work.
func TestBulkFoodAvailabilityEmptySet(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/food/availability",
		strings.NewReader(`{"ids":[],"available":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := bulkFoodAvailability(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestBulkSetAvailabilityAll(t *testing.T) {
	c, db := testContext(t)
	ids := seedFood(t, db, 3, true)

	affected, err := bulkSetAvailability(c, &domain.FoodItem{}, ids, false)
	if err != nil {
		t.Fatalf("bulkSetAvailability: %v", err)
	}
	if affected != 3 {
		t.Errorf("affected = %d, want 3", affected)
	}

	var unavailable int64
	db.Model(&domain.FoodItem{}).Where("available = ?", false).Count(&unavailable)
	if unavailable != 3 {
		t.Errorf("unavailable rows = %d, want 3", unavailable)
	}
}

func TestBulkSetAvailabilitySingle(t *testing.T) {
	c, db := testContext(t)
	ids := seedFood(t, db, 3, true)

	affected, err := bulkSetAvailability(c, &domain.FoodItem{}, ids[:1], false)
	if err != nil {
		t.Fatalf("bulkSetAvailability: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	var available int64
	db.Model(&domain.FoodItem{}).Where("available = ?", true).Count(&available)
	if available != 2 {
		t.Errorf("still-available rows = %d, want 2", available)
	}
}

// An unknown ID must roll back the whole batch, leaving every row untouched.
func TestBulkSetAvailabilityUnknownIDRollsBack(t *testing.T) {
	c, db := testContext(t)
	ids := seedFood(t, db, 2, true)

	_, err := bulkSetAvailability(c, &domain.FoodItem{}, append(ids, 999999999), false)
	if err == nil {
		t.Fatal("expected error for unknown ID")
	}

	var available int64
	db.Model(&domain.FoodItem{}).Where("available = ?", true).Count(&available)
	if available != 2 {
		t.Errorf("available rows after rollback = %d, want 2", available)
	}
}

// Setting the same value twice is a no-op, not a flip.
func TestBulkSetAvailabilityIdempotent(t *testing.T) {
	c, db := testContext(t)
	ids := seedFood(t, db, 2, true)

	for i := 0; i < 2; i++ {
		if _, err := bulkSetAvailability(c, &domain.FoodItem{}, ids, false); err != nil {
			t.Fatalf("bulkSetAvailability pass %d: %v", i+1, err)
		}
	}

	var unavailable int64
	db.Model(&domain.FoodItem{}).Where("available = ?", false).Count(&unavailable)
	if unavailable != 2 {
		t.Errorf("unavailable rows = %d, want 2", unavailable)
	}
}
