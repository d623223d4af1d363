package adminapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/store"
	"github.com/menuboard/menuboard/internal/webserver"
	"github.com/menuboard/menuboard/pkg/common"
)

func registerVenueRoutes() {
	webserver.ApiGET("/venue", getVenueSettings)
	webserver.ApiPUT("/venue", saveVenueSettings)
	webserver.ApiPOST("/venue/logo", uploadVenueLogo)
}

func getVenueSettings(c echo.Context) error {
	vs, err := getAppCtx(c).VenueRepo().Get(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load venue settings", err.Error())
	}
	return ok(c, vs)
}

// saveVenueSettings replaces the whole record. Partial updates are not
// supported: the admin form always submits every field.
func saveVenueSettings(c echo.Context) error {
	var vs domain.VenueSettings
	if err := c.Bind(&vs); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse venue settings", err.Error())
	}
	if strings.TrimSpace(vs.BarName) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Venue name is required", nil)
	}

	actx := getAppCtx(c)
	if err := actx.VenueRepo().Save(c.Request().Context(), &vs); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save venue settings", err.Error())
	}
	writeAuditLog(c, "venue.update", "updated venue settings")
	actx.Bus().Publish(store.TopicVenueUpdated)
	return ok(c, vs)
}

var logoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".svg":  true,
}

// uploadVenueLogo stores the uploaded image under the public dir and
// returns the URL the static route serves it from. The caller saves the
// URL via PUT /venue.
func uploadVenueLogo(c echo.Context) error {
	file, err := c.FormFile("logo")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "A logo file is required", nil)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !logoExtensions[ext] {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unsupported image format", ext)
	}
	if file.Size > 5<<20 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Logo must be under 5MB", nil)
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read upload", err.Error())
	}
	defer src.Close()

	name := fmt.Sprintf("logo_%s%s", common.UUID(), ext)
	dstPath := filepath.Join(getAppCtx(c).Config().GetPublicDir(), name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store upload", err.Error())
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store upload", err.Error())
	}

	writeAuditLog(c, "venue.logo", fmt.Sprintf("uploaded logo %s", name))
	return ok(c, map[string]interface{}{"url": "/public/" + name})
}
