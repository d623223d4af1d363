package webserver

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/menuboard/menuboard/internal/app"
)

var server *WebServer

// WebServer owns the echo instance and the three route groups: public menu,
// auth, and the JWT+admin protected admin API.
type WebServer struct {
	appctx     app.AppContext
	root       *echo.Echo
	pubGroup   *echo.Group
	authGroup  *echo.Group
	adminGroup *echo.Group
}

// Init constructs the package server from the application context.
func Init(actx app.AppContext) {
	server = NewWebServer(actx)
}

func NewWebServer(actx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(injectContext(actx))
	e.Use(latencyRecorder())

	// Uploaded logos and other assets are served from the workdir.
	e.Static("/public", actx.Config().GetPublicDir())

	ws := &WebServer{appctx: actx, root: e}
	ws.pubGroup = e.Group("/api/public")
	ws.authGroup = e.Group("/api/auth")
	ws.adminGroup = e.Group("/api/admin", jwtMiddleware(actx), requireAdmin)

	ws.registerAuthRoutes()
	return ws
}

// Listen starts the HTTP listener and blocks.
func Listen() error {
	cfg := server.appctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.L().Info("web server listening", zap.String("addr", addr))
	return server.root.Start(addr)
}

// AppCtx exposes the application context to route packages.
func AppCtx() app.AppContext {
	return server.appctx
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.adminGroup.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.adminGroup.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.adminGroup.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.adminGroup.DELETE(path, h)
}

func PubGET(path string, h echo.HandlerFunc) {
	server.pubGroup.GET(path, h)
}
