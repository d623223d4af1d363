package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/menuboard/menuboard/internal/domain"
)

// Integration tests require Postgres. Skip unless MENUBOARD_TEST_DSN is set.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("MENUBOARD_TEST_DSN")
	if dsn == "" {
		t.Skip("skipping store integration test: MENUBOARD_TEST_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrator().AutoMigrate(&domain.VenueSettings{}, &domain.Promotion{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestVenueRepositorySaveOverwrites(t *testing.T) {
	db := testDB(t)
	ls, err := OpenLocal(filepath.Join(t.TempDir(), "local.db"))
	if err != nil {
		t.Fatalf("OpenLocal: %v", err)
	}
	defer ls.Close()

	repo := NewVenueRepository(db, ls)
	ctx := context.Background()

	first := &domain.VenueSettings{BarName: "First Name", Phone: "111"}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := &domain.VenueSettings{BarName: "Second Name", Phone: "222"}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save again: %v", err)
	}

	// Writes overwrite, never append.
	var count int64
	db.Model(&domain.VenueSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("venue settings rows = %d, want 1", count)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BarName != "Second Name" || got.Phone != "222" {
		t.Errorf("loaded = %+v, want second save", got)
	}
}

func TestPromotionSetActiveIdempotent(t *testing.T) {
	db := testDB(t)
	ls, err := OpenLocal(filepath.Join(t.TempDir(), "local.db"))
	if err != nil {
		t.Fatalf("OpenLocal: %v", err)
	}
	defer ls.Close()

	repo := NewPromotionRepository(db, ls)
	ctx := context.Background()
	const key = "happy_hour_beer_5to7"

	for i := 0; i < 2; i++ {
		row, localOnly, err := repo.SetActive(ctx, key, true)
		if err != nil {
			t.Fatalf("SetActive #%d: %v", i+1, err)
		}
		if localOnly {
			t.Fatalf("SetActive #%d degraded to local-only against live DB", i+1)
		}
		if !row.Active {
			t.Errorf("SetActive #%d returned inactive row", i+1)
		}
	}

	var count int64
	db.Model(&domain.Promotion{}).Where("key = ?", key).Count(&count)
	if count != 1 {
		t.Errorf("duplicate rows after repeated toggle: %d", count)
	}

	if _, _, err := repo.SetActive(ctx, "no_such_key", true); err == nil {
		t.Error("SetActive accepted an unknown promotion key")
	}
}
