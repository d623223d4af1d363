package adminapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/menuboard/menuboard/internal/app"
	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/common"
)

func ok(c echo.Context, data interface{}) error {
	return webserver.OK(c, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return webserver.Fail(c, status, code, message, detail)
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return webserver.Paged(c, rows, total, page, pageSize)
}

// GetDB returns the per-request gorm handle injected by the web server.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.CtxKeyDB).(*gorm.DB)
}

func getAppCtx(c echo.Context) app.AppContext {
	return c.Get(webserver.CtxKeyAppCtx).(app.AppContext)
}

func operatorName(c echo.Context) string {
	return cast.ToString(c.Get(webserver.CtxKeyOperator))
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// parseSort whitelists sortable columns so the order clause never takes
// raw user input.
func parseSort(c echo.Context, allowed map[string]string) string {
	col, found := allowed[strings.TrimSpace(c.QueryParam("sort"))]
	if !found || col == "" {
		col = "id"
	}
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}
	return col + " " + order
}

// likeName adds a case-insensitive substring match on name and tags,
// branching on dialect because ILIKE is postgres-only.
func likeName(db *gorm.DB, q string) *gorm.DB {
	if q == "" {
		return db
	}
	if strings.EqualFold(db.Name(), "postgres") {
		return db.Where("name ILIKE ? OR tags ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	lq := "%" + strings.ToLower(q) + "%"
	return db.Where("LOWER(name) LIKE ? OR LOWER(tags) LIKE ?", lq, lq)
}

// writeAuditLog records an admin mutation; failures only log.
func writeAuditLog(c echo.Context, action, desc string) {
	entry := domain.OperatorLog{
		ID:        common.UUIDint64(),
		OprName:   operatorName(c),
		OprIP:     c.RealIP(),
		OptAction: action,
		OptDesc:   desc,
		OptTime:   time.Now(),
	}
	if err := GetDB(c).Create(&entry).Error; err != nil {
		zap.L().Warn("audit log write failed", zap.Error(err))
	}
}

// bulkSetAvailability flips availability for a set of rows inside one
// transaction. Any unknown ID aborts the whole batch.
func bulkSetAvailability(c echo.Context, model interface{}, ids []int64, available bool) (int64, error) {
	var affected int64
	err := GetDB(c).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Model(model).Where("id IN ?", ids).Count(&found).Error; err != nil {
			return err
		}
		if found != int64(len(ids)) {
			return fmt.Errorf("%d of %d items not found", int64(len(ids))-found, len(ids))
		}
		result := tx.Model(model).Where("id IN ?", ids).
			Updates(map[string]interface{}{"available": available, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

func boolQueryParam(c echo.Context, name string) (val, set bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}
