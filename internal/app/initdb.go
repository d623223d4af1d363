package app

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/pkg/common"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "menuboard"

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash default admin password", zap.Error(err))
		return
	}

	var operator domain.Operator
	err = a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.Operator{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Email:     "N/A",
			Username:  superUsername,
			Password:  string(hashed),
			Level:     "admin",
			Status:    common.ENABLED,
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account",
				zap.String("username", superUsername))
		}
	case err != nil:
		zap.L().Error("failed to query default admin", zap.Error(err))
	}
}

// checkPromotions seeds the preset promotion rows, inactive by default.
// Existing rows keep their current copy and active state.
func (a *Application) checkPromotions() {
	for _, p := range domain.PresetPromotions {
		var count int64
		a.gormDB.Model(&domain.Promotion{}).Where("key = ?", p.Key).Count(&count)
		if count == 0 {
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to seed promotion",
					zap.String("key", p.Key), zap.Error(err))
			} else {
				zap.L().Info("initialized preset promotion", zap.String("key", p.Key))
			}
		}
	}
}

// checkVenueSettings makes sure the singleton settings row exists so the
// public contact card never 404s.
func (a *Application) checkVenueSettings() {
	var count int64
	a.gormDB.Model(&domain.VenueSettings{}).
		Where("id = ?", domain.VenueSettingsID).
		Count(&count)
	if count == 0 {
		if err := a.gormDB.Create(&domain.VenueSettings{
			ID:        domain.VenueSettingsID,
			UpdatedAt: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to seed venue settings", zap.Error(err))
		} else {
			zap.L().Info("initialized empty venue settings row")
		}
	}
}
