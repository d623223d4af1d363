package webserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/menuboard/menuboard/internal/app"
	"github.com/menuboard/menuboard/pkg/metrics"
)

// Context keys set per request. Handlers read the DB handle from the
// request context instead of a package global, so tests can swap it.
const (
	CtxKeyDB       = "db"
	CtxKeyAppCtx   = "appctx"
	CtxKeyOperator = "operator"
)

func injectContext(actx app.AppContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CtxKeyDB, actx.DB())
			c.Set(CtxKeyAppCtx, actx)
			return next(c)
		}
	}
}

func latencyRecorder() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.RecordAPILatency(c.Path(), float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

func jwtMiddleware(actx app.AppContext) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(actx.Config().Web.Secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return Fail(c, http.StatusUnauthorized, "UNAUTHORIZED",
				"Authentication required", nil)
		},
	})
}

// requireAdmin gates the admin group on the token's level claim. Non-admin
// sessions get a denial, never a partial admin surface.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return Fail(c, http.StatusUnauthorized, "UNAUTHORIZED",
				"Authentication required", nil)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return Fail(c, http.StatusUnauthorized, "UNAUTHORIZED",
				"Authentication required", nil)
		}
		if cast.ToString(claims["level"]) != "admin" {
			return Fail(c, http.StatusForbidden, "FORBIDDEN",
				"Admin privileges required", nil)
		}
		c.Set(CtxKeyOperator, cast.ToString(claims["usr"]))
		return next(c)
	}
}
