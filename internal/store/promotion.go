package store

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menuboard/menuboard/internal/domain"
)

// PromotionRepository toggles and lists preset promotions. The remote table
// is authoritative; when it is unreachable the active-key set persisted in
// the local store keeps the toggles working, and remote writes that fail
// degrade to a local-only toggle rather than an error.
type PromotionRepository struct {
	db    *gorm.DB
	local *LocalStore
}

func NewPromotionRepository(db *gorm.DB, local *LocalStore) *PromotionRepository {
	return &PromotionRepository{db: db, local: local}
}

// List returns the remote promotion rows. On remote failure or an empty
// table the preset definitions are materialized with the locally persisted
// active keys applied.
func (r *PromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	var rows []domain.Promotion
	err := r.db.WithContext(ctx).Order("key").Find(&rows).Error
	if err == nil && len(rows) > 0 {
		r.mirrorActiveKeys(rows)
		return rows, nil
	}
	if err != nil {
		zap.L().Warn("promotions remote read failed, using local fallback",
			zap.Error(err))
	}
	return r.localFallback(), nil
}

// SetActive flips one preset promotion. The upsert is idempotent: setting
// the same state twice yields the same row. Returns the resulting row and
// whether the write only reached the local tier.
func (r *PromotionRepository) SetActive(ctx context.Context, key string, active bool) (*domain.Promotion, bool, error) {
	preset := domain.PresetPromotionByKey(key)
	if preset == nil {
		return nil, false, errors.Errorf("unknown promotion key %q", key)
	}

	row := domain.Promotion{
		Key:         preset.Key,
		Title:       preset.Title,
		Description: preset.Description,
		Category:    preset.Category,
		Active:      active,
		UpdatedAt:   time.Now(),
	}

	// Local tier first so the toggle survives a remote outage.
	r.updateLocalActiveKeys(key, active)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		zap.L().Warn("promotion upsert failed, toggle kept locally",
			zap.String("key", key), zap.Bool("active", active), zap.Error(err))
		return &row, true, nil
	}
	return &row, false, nil
}

func (r *PromotionRepository) localFallback() []domain.Promotion {
	activeKeys := r.LocalActiveKeys()
	activeSet := make(map[string]bool, len(activeKeys))
	for _, k := range activeKeys {
		activeSet[k] = true
	}

	out := make([]domain.Promotion, 0, len(domain.PresetPromotions))
	for _, p := range domain.PresetPromotions {
		p.Active = activeSet[p.Key]
		out = append(out, p)
	}
	return out
}

// LocalActiveKeys reads the locally persisted active promotion keys.
// A missing or unreadable value is an empty set, never an error.
func (r *PromotionRepository) LocalActiveKeys() []string {
	var keys []string
	if err := r.local.getJSON(localBucketPromos, localKeyActiveKeys, &keys); err != nil {
		if !errors.Is(err, ErrLocalMiss) {
			zap.L().Debug("active promotion keys local read failed", zap.Error(err))
		}
		return nil
	}
	return keys
}

func (r *PromotionRepository) updateLocalActiveKeys(key string, active bool) {
	set := make(map[string]bool)
	for _, k := range r.LocalActiveKeys() {
		set[k] = true
	}
	if active {
		set[key] = true
	} else {
		delete(set, key)
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if err := r.local.putJSON(localBucketPromos, localKeyActiveKeys, keys); err != nil {
		zap.L().Debug("active promotion keys local write failed", zap.Error(err))
	}
}

func (r *PromotionRepository) mirrorActiveKeys(rows []domain.Promotion) {
	var keys []string
	for _, row := range rows {
		if row.Active {
			keys = append(keys, row.Key)
		}
	}
	sort.Strings(keys)
	if err := r.local.putJSON(localBucketPromos, localKeyActiveKeys, keys); err != nil {
		zap.L().Debug("active promotion keys local mirror failed", zap.Error(err))
	}
}
