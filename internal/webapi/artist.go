package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/artistry-gallery/artistry/internal/accessgate"
	"github.com/artistry-gallery/artistry/internal/app"
	"github.com/artistry-gallery/artistry/internal/portfolio"
	"github.com/artistry-gallery/artistry/internal/webserver"
)

func registerArtistRoutes() {
	gate := webserver.Gate(accessgate.ViewArtistDashboard)
	webserver.GET(accessgate.ViewArtistDashboard.Path(), artistSummary, gate)
	webserver.ApiGET("/artist/summary", artistSummary, gate)
	webserver.ApiGET("/artist/artworks", listArtistArtworks, gate)
	webserver.ApiPOST("/artist/artworks", createArtwork, gate)
	webserver.ApiPUT("/artist/artworks/:id", updateArtwork, gate)
	webserver.ApiDELETE("/artist/artworks/:id", deleteArtwork, gate)
}

func artistSummary(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	return ok(c, ctx.Portfolio().Summarize(*acct))
}

func listArtistArtworks(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	return ok(c, ctx.Portfolio().Products(*acct))
}

// Artwork forms arrive as loose key/value maps; the portfolio service owns
// parsing and validation.
func bindForm(c echo.Context) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func createArtwork(c echo.Context) error {
	fields, err := bindForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse artwork form", nil)
	}
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	p, err := ctx.Portfolio().Create(*acct, fields)
	if errors.Is(err, portfolio.ErrMissingRequiredField) {
		return fail(c, http.StatusBadRequest, "MISSING_REQUIRED_FIELD", "Please fill in all required fields", nil)
	} else if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse artwork form", err.Error())
	}
	ctx.Bus().Publish(app.TopicArtworkCreated, webserver.DeviceID(c), p.Title)
	return ok(c, p)
}

func updateArtwork(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid artwork ID", nil)
	}
	fields, err := bindForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse artwork form", nil)
	}
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	p, err := ctx.Portfolio().Update(*acct, id, fields)
	if errors.Is(err, portfolio.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Artwork not found", nil)
	} else if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse artwork form", err.Error())
	}
	ctx.Bus().Publish(app.TopicArtworkUpdated, webserver.DeviceID(c), p.Title)
	return ok(c, p)
}

func deleteArtwork(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid artwork ID", nil)
	}
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	if err := ctx.Portfolio().Delete(*acct, id); errors.Is(err, portfolio.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Artwork not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "PORTFOLIO_ERROR", "Failed to delete artwork", err.Error())
	}
	ctx.Bus().Publish(app.TopicArtworkDeleted, webserver.DeviceID(c), strconv.FormatInt(id, 10))
	return ok(c, map[string]interface{}{"id": id})
}
