package sqlstore

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/bistro-boss-api/internal/metrics"
)

const startKey = "metrics:start"

// registerCallbacks times every GORM operation into the store metrics
func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", beforeOp); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", afterOp("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", beforeOp); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", afterOp("query")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", beforeOp); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", afterOp("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", beforeOp); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", afterOp("delete")); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("metrics:before_row", beforeOp); err != nil {
		return err
	}
	return cb.Row().After("gorm:row").Register("metrics:after_row", afterOp("row"))
}

func beforeOp(tx *gorm.DB) {
	tx.InstanceSet(startKey, time.Now())
}

func afterOp(op string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(startKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		failed := tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound)
		metrics.ObserveStoreOp("sql", op, time.Since(start), failed)
	}
}
