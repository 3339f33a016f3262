package views

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cooler-fleet-portal/internal/logger"
)

// Names of the reporting views derived from imported data.
var materializedViews = []string{
	"mv_client_overview",
	"mv_asset_current_status",
}

// Refresher rebuilds the reporting materialized views after imports touch
// the tables feeding them.
type Refresher struct {
	db *gorm.DB
}

func NewRefresher(db *gorm.DB) *Refresher {
	return &Refresher{db: db}
}

// RefreshAll rebuilds every view. A concurrent refresh is tried first so
// readers are not blocked; when that fails (first refresh, or no unique
// index) it falls back to a blocking refresh. Failures are logged, never
// returned: a stale view must not fail an otherwise successful import.
func (r *Refresher) RefreshAll(ctx context.Context) {
	for _, view := range materializedViews {
		if err := r.refreshOne(ctx, view); err != nil {
			logger.Warn("materialized view refresh failed",
				zap.String("view", view),
				zap.Error(err))
		} else {
			logger.Info("materialized view refreshed", zap.String("view", view))
		}
	}
}

func (r *Refresher) refreshOne(ctx context.Context, view string) error {
	db := r.db.WithContext(ctx)
	err := db.Exec("REFRESH MATERIALIZED VIEW CONCURRENTLY " + view).Error
	if err == nil {
		return nil
	}
	return db.Exec("REFRESH MATERIALIZED VIEW " + view).Error
}
