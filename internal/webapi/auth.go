package webapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/artistry-gallery/artistry/internal/accessgate"
	"github.com/artistry-gallery/artistry/internal/app"
	"github.com/artistry-gallery/artistry/internal/identity"
	"github.com/artistry-gallery/artistry/internal/webserver"
)

type loginPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func registerAuthRoutes() {
	webserver.GET(accessgate.ViewLogin.Path(), loginView)
	webserver.ApiPOST("/auth/login", login)
	webserver.ApiPOST("/auth/logout", logout)
	webserver.ApiGET("/auth/me", currentAccount)
}

func loginView(c echo.Context) error {
	return ok(c, map[string]interface{}{"view": string(accessgate.ViewLogin)})
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login request", nil)
	}
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "MISSING_FIELDS", "Please fill in all fields", nil)
	}

	ctx := webserver.AppCtx(c)
	acct, err := ctx.Identity().Authenticate(payload.Email, payload.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "AUTH_ERROR", "Login failed", err.Error())
	}

	deviceID := webserver.DeviceID(c)
	if err := ctx.Sessions().Begin(deviceID, acct); err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Unable to start session", err.Error())
	}

	from := webserver.TakeFrom(c)
	ctx.Bus().Publish(app.TopicAuthLogin, deviceID, acct.Email)

	return ok(c, map[string]interface{}{
		"user":     acct,
		"redirect": accessgate.LoginDestination(acct.Role, from),
	})
}

func logout(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	deviceID := webserver.DeviceID(c)
	acct := webserver.Account(c)
	if err := ctx.Sessions().End(deviceID); err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Unable to end session", err.Error())
	}
	if acct != nil {
		ctx.Bus().Publish(app.TopicAuthLogout, deviceID, acct.Email)
	}
	return ok(c, map[string]interface{}{"redirect": accessgate.ViewGallery.Path()})
}

func currentAccount(c echo.Context) error {
	acct := webserver.Account(c)
	if acct == nil {
		return fail(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", "No active session", nil)
	}
	return ok(c, acct)
}
