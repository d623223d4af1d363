package adminapi

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/menuboard/menuboard/internal/webserver"

	_ "image/jpeg"
)

// Raster QR codes render on a fixed canvas so printed table cards come out
// the same size regardless of the requested module count.
const qrCanvasSize = 1024

func registerQRRoutes() {
	webserver.ApiGET("/qr/menu.png", menuQRCodePNG)
	webserver.ApiGET("/qr/menu.svg", menuQRCodeSVG)
}

func menuURL(c echo.Context) (string, error) {
	url := strings.TrimSpace(getAppCtx(c).Config().Web.MenuURL)
	if url == "" {
		return "", fmt.Errorf("menu URL is not configured")
	}
	return url, nil
}

// parseHexColor accepts #RGB and #RRGGBB, defaulting to black.
func parseHexColor(s string) (color.RGBA, error) {
	black := color.RGBA{A: 0xff}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return black, nil
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return black, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return black, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func buildQR(c echo.Context) (*qrcode.QRCode, error) {
	url, err := menuURL(c)
	if err != nil {
		return nil, err
	}
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	fg, err := parseHexColor(c.QueryParam("fg"))
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fg
	q.BackgroundColor = color.White
	return q, nil
}

func menuQRCodePNG(c echo.Context) error {
	q, err := buildQR(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to build QR code", err.Error())
	}

	img := q.Image(qrCanvasSize)
	if logo := strings.TrimSpace(c.QueryParam("logo")); logo != "" {
		img, err = overlayLogo(c, img, logo)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to overlay logo", err.Error())
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fail(c, http.StatusInternalServerError, "QR_ERROR", "Failed to encode QR code", err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// overlayLogo draws an uploaded image over the QR center, capped at a fifth
// of the canvas so the code stays scannable at medium error correction.
func overlayLogo(c echo.Context, qr image.Image, name string) (image.Image, error) {
	// The logo name is a bare filename from a previous upload; reject
	// anything that escapes the public dir.
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid logo name")
	}
	f, err := os.Open(filepath.Join(getAppCtx(c).Config().GetPublicDir(), name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	logo, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(qr.Bounds())
	draw.Draw(canvas, canvas.Bounds(), qr, image.Point{}, draw.Src)

	side := qrCanvasSize / 5
	scaled := scaleNearest(logo, side, side)
	offset := image.Pt((qrCanvasSize-side)/2, (qrCanvasSize-side)/2)
	draw.Draw(canvas, scaled.Bounds().Add(offset), scaled, image.Point{}, draw.Over)
	return canvas, nil
}

func scaleNearest(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	for y := 0; y < h; y++ {
		sy := sb.Min.Y + y*sb.Dy()/h
		for x := 0; x < w; x++ {
			sx := sb.Min.X + x*sb.Dx()/w
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}

// menuQRCodeSVG emits one rect per dark module. Vector output scales to any
// print size, which the fixed raster canvas cannot.
func menuQRCodeSVG(c echo.Context) error {
	q, err := buildQR(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to build QR code", err.Error())
	}

	grid := q.Bitmap()
	n := len(grid)
	fg := q.ForegroundColor.(color.RGBA)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, n, n)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, n, n)
	fill := fmt.Sprintf("#%02x%02x%02x", fg.R, fg.G, fg.B)
	for y, row := range grid {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`, x, y, fill)
			}
		}
	}
	b.WriteString(`</svg>`)
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(b.String()))
}
