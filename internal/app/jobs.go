package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/menuboard/menuboard/internal/domain"
)

// initJob wires the background schedule: the mirror refresh is the staleness
// bound for the local fallback tier, the log prune keeps the audit table small.
func (a *Application) initJob() {
	a.sched = cron.New()

	_, err := a.sched.AddFunc("@every 5m", func() {
		a.syncer.RefreshNow()
	})
	if err != nil {
		zap.L().Error("failed to schedule mirror refresh", zap.Error(err))
	}

	_, err = a.sched.AddFunc("@daily", a.pruneOperatorLogs)
	if err != nil {
		zap.L().Error("failed to schedule log prune", zap.Error(err))
	}

	a.sched.Start()
}

func (a *Application) pruneOperatorLogs() {
	cutoff := time.Now().AddDate(0, 0, -90)
	result := a.gormDB.Where("opt_time < ?", cutoff).Delete(&domain.OperatorLog{})
	if result.Error != nil {
		zap.L().Error("operator log prune failed", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		zap.L().Info("pruned operator logs", zap.Int64("rows", result.RowsAffected))
	}
}
