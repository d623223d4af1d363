package store

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/menuboard/menuboard/internal/domain"
)

func tempLocal(t *testing.T) *LocalStore {
	t.Helper()
	ls, err := OpenLocal(filepath.Join(t.TempDir(), "local.db"))
	if err != nil {
		t.Fatalf("OpenLocal: %v", err)
	}
	t.Cleanup(func() { _ = ls.Close() })
	return ls
}

func TestLocalStoreMiss(t *testing.T) {
	ls := tempLocal(t)
	var vs domain.VenueSettings
	err := ls.getJSON(localBucketVenue, localKeyVenue, &vs)
	if !errors.Is(err, ErrLocalMiss) {
		t.Errorf("getJSON on empty store = %v, want ErrLocalMiss", err)
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	ls := tempLocal(t)
	in := domain.VenueSettings{
		ID:      domain.VenueSettingsID,
		BarName: "The Copper Still",
		Phone:   "+91 98765 43210",
	}
	if err := ls.putJSON(localBucketVenue, localKeyVenue, &in); err != nil {
		t.Fatalf("putJSON: %v", err)
	}
	var out domain.VenueSettings
	if err := ls.getJSON(localBucketVenue, localKeyVenue, &out); err != nil {
		t.Fatalf("getJSON: %v", err)
	}
	if out.BarName != in.BarName || out.Phone != in.Phone {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestPromotionLocalActiveKeys(t *testing.T) {
	ls := tempLocal(t)
	repo := &PromotionRepository{local: ls}

	if keys := repo.LocalActiveKeys(); len(keys) != 0 {
		t.Fatalf("fresh store has active keys: %v", keys)
	}

	repo.updateLocalActiveKeys("buy2_beer_get1_free", true)
	repo.updateLocalActiveKeys("welcome_drink_weekend", true)

	keys := repo.LocalActiveKeys()
	if len(keys) != 2 {
		t.Fatalf("active keys = %v, want 2", keys)
	}

	// Toggling the same state twice is idempotent.
	repo.updateLocalActiveKeys("welcome_drink_weekend", true)
	if keys := repo.LocalActiveKeys(); len(keys) != 2 {
		t.Errorf("re-activating changed key set: %v", keys)
	}

	repo.updateLocalActiveKeys("buy2_beer_get1_free", false)
	repo.updateLocalActiveKeys("buy2_beer_get1_free", false)
	keys = repo.LocalActiveKeys()
	if len(keys) != 1 || keys[0] != "welcome_drink_weekend" {
		t.Errorf("after deactivation keys = %v, want [welcome_drink_weekend]", keys)
	}
}

func TestPromotionLocalFallbackMaterializesPresets(t *testing.T) {
	ls := tempLocal(t)
	repo := &PromotionRepository{local: ls}
	repo.updateLocalActiveKeys("combo_whiskey_starter", true)

	promos := repo.localFallback()
	if len(promos) != len(domain.PresetPromotions) {
		t.Fatalf("fallback returned %d promotions, want %d", len(promos), len(domain.PresetPromotions))
	}
	for _, p := range promos {
		wantActive := p.Key == "combo_whiskey_starter"
		if p.Active != wantActive {
			t.Errorf("fallback %s active = %v, want %v", p.Key, p.Active, wantActive)
		}
	}
}
