// Package webapi registers the HTTP surface: public gallery and login, the
// buyer cart and profile, the artist portfolio and the admin dashboard, each
// behind its access-gate view.
package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistry-gallery/artistry/internal/webserver"
)

// RegisterRoutes installs all routes on the initialized web server.
func RegisterRoutes() {
	registerGalleryRoutes()
	registerAuthRoutes()
	registerCartRoutes()
	registerProfileRoutes()
	registerArtistRoutes()
	registerAdminRoutes()
	webserver.RouteNotFound(notFound)
}

func notFound(c echo.Context) error {
	return fail(c, http.StatusNotFound, "NOT_FOUND", "Page not found", nil)
}
