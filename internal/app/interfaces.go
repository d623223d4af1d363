package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/menuboard/menuboard/config"
	"github.com/menuboard/menuboard/internal/mailer"
	"github.com/menuboard/menuboard/internal/store"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// RepoProvider provides the two-tier repositories and the event bus
type RepoProvider interface {
	Bus() EventBus.Bus
	VenueRepo() *store.VenueRepository
	PromoRepo() *store.PromotionRepository
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	RepoProvider
	SchedulerProvider

	Mailer() *mailer.Mailer

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
