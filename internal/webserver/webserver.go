// Package webserver owns the echo instance: middleware, the device cookie,
// the access-gate evaluation and the route registration helpers the webapi
// package builds on.
package webserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/artistry-gallery/artistry/internal/accessgate"
	"github.com/artistry-gallery/artistry/internal/app"
	"github.com/artistry-gallery/artistry/internal/domain"
)

const (
	cookieName = "artistry_device"

	ctxAppKey     = "artistry_app"
	ctxDeviceKey  = "artistry_device_id"
	ctxAccountKey = "artistry_account"

	fromValueKey   = "from"
	deviceValueKey = "device_id"
)

type WebServer struct {
	ctx  app.WebContext
	root *echo.Echo
}

var server *WebServer

// Init builds the web server around the application context and installs the
// common middleware chain.
func Init(ctx app.WebContext) *WebServer {
	s := &WebServer{ctx: ctx, root: echo.New()}
	s.root.HideBanner = true
	s.root.HidePort = true
	s.root.Use(middleware.Recover())
	s.root.Use(session.Middleware(sessions.NewCookieStore([]byte(ctx.Config().Web.Secret))))
	s.root.Use(s.deviceMiddleware)
	server = s
	return s
}

// Instance returns the initialized server. Route registration helpers depend
// on Init having run.
func Instance() *WebServer {
	return server
}

// deviceMiddleware gives every visitor a stable device ID through the cookie
// session, restores that device's account session if any, and exposes both to
// the handlers.
func (s *WebServer) deviceMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, _ := session.Get(cookieName, c)
		deviceID, _ := sess.Values[deviceValueKey].(string)
		if deviceID == "" {
			deviceID = s.ctx.Sessions().NewDeviceID()
			sess.Values[deviceValueKey] = deviceID
			sess.Options = &sessions.Options{Path: "/", MaxAge: 86400 * 365, HttpOnly: true}
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				zap.S().Warnf("device cookie save failed: %v", err)
			}
		}
		c.Set(ctxAppKey, s.ctx)
		c.Set(ctxDeviceKey, deviceID)
		if acct := s.ctx.Sessions().Restore(deviceID); acct != nil {
			c.Set(ctxAccountKey, acct)
		}
		return next(c)
	}
}

// Gate guards a route with the access-gate decision for the given view. The
// decision is re-evaluated on every request; a denial is always a redirect,
// never an error.
func Gate(view accessgate.View) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := accessgate.Decide(Account(c), view)
			if decision.Allowed {
				return next(c)
			}
			if decision.RecordFrom {
				RememberFrom(c, view.Path())
			}
			return c.Redirect(http.StatusFound, decision.RedirectTo.Path())
		}
	}
}

// RememberFrom records the view a visitor asked for before being sent to
// login, so a successful buyer login can return there.
func RememberFrom(c echo.Context, path string) {
	sess, _ := session.Get(cookieName, c)
	sess.Values[fromValueKey] = path
	_ = sess.Save(c.Request(), c.Response())
}

// TakeFrom returns and clears the recorded pre-login view, if any.
func TakeFrom(c echo.Context) string {
	sess, _ := session.Get(cookieName, c)
	from, _ := sess.Values[fromValueKey].(string)
	if from != "" {
		delete(sess.Values, fromValueKey)
		_ = sess.Save(c.Request(), c.Response())
	}
	return from
}

// AppCtx returns the application context installed by the middleware.
func AppCtx(c echo.Context) app.WebContext {
	return c.Get(ctxAppKey).(app.WebContext)
}

// DeviceID returns the requesting device's ID.
func DeviceID(c echo.Context) string {
	id, _ := c.Get(ctxDeviceKey).(string)
	return id
}

// Account returns the authenticated account for this request, or nil.
func Account(c echo.Context) *domain.Account {
	acct, _ := c.Get(ctxAccountKey).(*domain.Account)
	return acct
}

// Route registration helpers in the style the handler files expect.

func GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET(path, h, m...)
}

func ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET("/api"+path, h, m...)
}

func ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.POST("/api"+path, h, m...)
}

func ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.PUT("/api"+path, h, m...)
}

func ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.DELETE("/api"+path, h, m...)
}

// RouteNotFound installs the public catch-all.
func RouteNotFound(h echo.HandlerFunc) {
	server.root.RouteNotFound("/*", h)
}

// Echo exposes the underlying instance (tests drive it directly).
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// Start runs the HTTP listener until the context is cancelled.
func (s *WebServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.ctx.Config().Web.Host, s.ctx.Config().Web.Port)
	zap.S().Infof("web server listening on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.root.Start(addr)
	}()

	select {
	case <-ctx.Done():
		return s.root.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
