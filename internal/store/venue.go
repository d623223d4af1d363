package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menuboard/menuboard/internal/domain"
)

// VenueRepository reads and writes the singleton venue settings record,
// remote-first with the local store as fallback. Successful remote reads
// and writes mirror into the local tier; local failures are swallowed with
// a debug log since the local tier is best-effort.
type VenueRepository struct {
	db    *gorm.DB
	local *LocalStore
}

func NewVenueRepository(db *gorm.DB, local *LocalStore) *VenueRepository {
	return &VenueRepository{db: db, local: local}
}

// Get fetches the settings row. A missing remote row is not an error: the
// local fallback is consulted, and if that also misses, an empty default
// record is returned.
func (r *VenueRepository) Get(ctx context.Context) (*domain.VenueSettings, error) {
	var vs domain.VenueSettings
	err := r.db.WithContext(ctx).
		Where("id = ?", domain.VenueSettingsID).
		First(&vs).Error
	switch {
	case err == nil:
		r.mirror(&vs)
		return &vs, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to local
	default:
		zap.L().Warn("venue settings remote read failed, trying local",
			zap.Error(err))
	}

	if localErr := r.local.getJSON(localBucketVenue, localKeyVenue, &vs); localErr == nil {
		return &vs, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "load venue settings")
	}
	return &domain.VenueSettings{ID: domain.VenueSettingsID}, nil
}

// Save upserts the whole record under the fixed identity. Writes overwrite,
// never append. The local mirror is updated opportunistically.
func (r *VenueRepository) Save(ctx context.Context, vs *domain.VenueSettings) error {
	vs.ID = domain.VenueSettingsID
	vs.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(vs).Error
	if err != nil {
		return errors.Wrap(err, "save venue settings")
	}

	r.mirror(vs)
	return nil
}

func (r *VenueRepository) mirror(vs *domain.VenueSettings) {
	if err := r.local.putJSON(localBucketVenue, localKeyVenue, vs); err != nil {
		zap.L().Debug("venue settings local mirror failed", zap.Error(err))
	}
}
