package store

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/menuboard/menuboard/internal/menu"
)

// Event topics published by the API layer after successful mutations.
const (
	TopicMenuChanged      = "menu.changed"
	TopicVenueUpdated     = "venue.updated"
	TopicPromotionToggled = "promotion.toggled"
)

// Syncer keeps the local mirror aligned with the record store. Change events
// trigger a debounced refresh so bursts of admin edits collapse into a
// single mirror pass; a periodic cron job calls RefreshNow as the staleness
// bound when no events arrive.
type Syncer struct {
	bus    EventBus.Bus
	venues *VenueRepository
	promos *PromotionRepository
	deb    *menu.Debouncer
}

func NewSyncer(bus EventBus.Bus, venues *VenueRepository, promos *PromotionRepository) *Syncer {
	s := &Syncer{
		bus:    bus,
		venues: venues,
		promos: promos,
		deb:    menu.NewDebouncer(2 * time.Second),
	}
	_ = bus.Subscribe(TopicVenueUpdated, s.notify)
	_ = bus.Subscribe(TopicPromotionToggled, s.notify)
	return s
}

func (s *Syncer) notify() {
	s.deb.Trigger(s.RefreshNow)
}

// RefreshNow re-reads venue settings and promotions from the record store;
// successful reads mirror into the local tier as a side effect. Failures
// are logged and ignored: the mirror keeps its previous contents.
func (s *Syncer) RefreshNow() {
	ctx := context.Background()
	if _, err := s.venues.Get(ctx); err != nil {
		zap.L().Debug("mirror refresh: venue settings", zap.Error(err))
	}
	if _, err := s.promos.List(ctx); err != nil {
		zap.L().Debug("mirror refresh: promotions", zap.Error(err))
	}
}

func (s *Syncer) Close() {
	s.deb.Stop()
	_ = s.bus.Unsubscribe(TopicVenueUpdated, s.notify)
	_ = s.bus.Unsubscribe(TopicPromotionToggled, s.notify)
}
