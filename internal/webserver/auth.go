package webserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/pkg/common"
)

const tokenTTL = 24 * time.Hour

var validate = validator.New()

func (ws *WebServer) registerAuthRoutes() {
	ws.authGroup.POST("/login", ws.login)
	ws.authGroup.POST("/register", ws.register)
	ws.authGroup.POST("/reset-password", ws.sendPasswordReset)
	ws.authGroup.POST("/reset-confirm", ws.confirmPasswordReset)
	ws.authGroup.POST("/logout", ws.logout)
	ws.authGroup.GET("/session", ws.session, jwtMiddleware(ws.appctx))
}

type loginPayload struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=6"`
}

func (ws *WebServer) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Unable to parse login parameters", nil)
	}
	if err := validate.Struct(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Username and password are required", err.Error())
	}

	var opr domain.Operator
	err := ws.appctx.DB().
		Where("username = ?", strings.TrimSpace(payload.Username)).
		First(&opr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS",
			"Invalid username or password", nil)
	} else if err != nil {
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to query operator", nil)
	}
	if opr.Status != common.ENABLED {
		return Fail(c, http.StatusForbidden, "ACCOUNT_DISABLED",
			"Account is disabled", nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(opr.Password), []byte(payload.Password)) != nil {
		return Fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS",
			"Invalid username or password", nil)
	}

	ws.appctx.DB().Model(&domain.Operator{}).
		Where("id = ?", opr.ID).
		Update("last_login", time.Now())

	token, err := ws.signToken(&opr)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "TOKEN_ERROR",
			"Failed to issue session token", nil)
	}

	zap.L().Info("operator logged in", zap.String("username", opr.Username))
	return OK(c, map[string]interface{}{
		"token":    token,
		"username": opr.Username,
		"realname": opr.Realname,
		"level":    opr.Level,
	})
}

type registerPayload struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Realname string `json:"realname"`
}

// register creates a viewer-level account. An existing admin promotes it;
// self-registration never grants admin.
func (ws *WebServer) register(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Unable to parse registration parameters", nil)
	}
	if err := validate.Struct(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Registration fields are invalid", err.Error())
	}

	username := strings.TrimSpace(payload.Username)
	var dup domain.Operator
	if err := ws.appctx.DB().Where("username = ?", username).First(&dup).Error; err == nil {
		return Fail(c, http.StatusConflict, "DUPLICATE_USERNAME",
			"Username is already taken", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "HASH_ERROR",
			"Failed to process password", nil)
	}

	opr := domain.Operator{
		ID:        common.UUIDint64(),
		Username:  username,
		Email:     strings.TrimSpace(payload.Email),
		Realname:  strings.TrimSpace(payload.Realname),
		Password:  string(hashed),
		Level:     "viewer",
		Status:    common.ENABLED,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := ws.appctx.DB().Create(&opr).Error; err != nil {
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to create account", nil)
	}
	return OK(c, map[string]interface{}{"username": opr.Username})
}

type resetPayload struct {
	Email string `json:"email" validate:"required,email"`
}

func (ws *WebServer) sendPasswordReset(c echo.Context) error {
	var payload resetPayload
	if err := c.Bind(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Unable to parse reset parameters", nil)
	}
	if err := validate.Struct(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"A valid email is required", err.Error())
	}

	var opr domain.Operator
	err := ws.appctx.DB().
		Where("email = ?", strings.TrimSpace(payload.Email)).
		First(&opr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Do not reveal whether the address exists.
		return OK(c, map[string]interface{}{"sent": true})
	} else if err != nil {
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to process reset request", nil)
	}

	token := common.RandomToken(16)
	if err := ws.appctx.DB().Model(&domain.Operator{}).
		Where("id = ?", opr.ID).
		Update("reset_token", token).Error; err != nil {
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to process reset request", nil)
	}

	if err := ws.appctx.Mailer().SendPasswordReset(opr.Email, opr.Username, token); err != nil {
		return Fail(c, http.StatusInternalServerError, "MAIL_ERROR",
			"Failed to send reset mail", nil)
	}
	return OK(c, map[string]interface{}{"sent": true})
}

type resetConfirmPayload struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (ws *WebServer) confirmPasswordReset(c echo.Context) error {
	var payload resetConfirmPayload
	if err := c.Bind(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Unable to parse reset parameters", nil)
	}
	if err := validate.Struct(&payload); err != nil {
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Token and new password are required", err.Error())
	}

	var opr domain.Operator
	err := ws.appctx.DB().
		Where("reset_token = ? AND reset_token != ''", payload.Token).
		First(&opr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Fail(c, http.StatusBadRequest, "INVALID_TOKEN",
			"Reset token is invalid or already used", nil)
	} else if err != nil {
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to verify reset token", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return Fail(c, http.StatusInternalServerError, "HASH_ERROR",
			"Failed to process password", nil)
	}
	if err := ws.appctx.DB().Model(&domain.Operator{}).
		Where("id = ?", opr.ID).
		Updates(map[string]interface{}{
			"password":    string(hashed),
			"reset_token": "",
			"updated_at":  time.Now(),
		}).Error; err != nil {
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR",
			"Failed to update password", nil)
	}
	return OK(c, map[string]interface{}{"username": opr.Username})
}

func (ws *WebServer) session(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return Fail(c, http.StatusUnauthorized, "UNAUTHORIZED",
			"Authentication required", nil)
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return OK(c, map[string]interface{}{
		"username": cast.ToString(claims["usr"]),
		"level":    cast.ToString(claims["level"]),
		"expires":  cast.ToInt64(claims["exp"]),
	})
}

// logout is stateless; the client discards its token. Kept as an endpoint
// so the action lands in the audit trail.
func (ws *WebServer) logout(c echo.Context) error {
	return OK(c, map[string]interface{}{"logout": true})
}

func (ws *WebServer) signToken(opr *domain.Operator) (string, error) {
	claims := jwt.MapClaims{
		"uid":   opr.ID,
		"usr":   opr.Username,
		"level": opr.Level,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ws.appctx.Config().Web.Secret))
}
