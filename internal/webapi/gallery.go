package webapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artistry-gallery/artistry/internal/catalog"
	"github.com/artistry-gallery/artistry/internal/webserver"
)

func registerGalleryRoutes() {
	webserver.GET("/", listGallery)
	webserver.ApiGET("/gallery", listGallery)
	webserver.ApiGET("/gallery/artists", listGalleryArtists)
	webserver.ApiGET("/gallery/:id", getArtwork)
}

// queryFromParams builds the pipeline query from the request. The category
// parameter doubles as the deep-link seed for the gallery's initial filter.
func queryFromParams(c echo.Context) catalog.Query {
	q := catalog.Query{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Artist:   strings.TrimSpace(c.QueryParam("artist")),
		Search:   strings.TrimSpace(c.QueryParam("q")),
		Sort:     catalog.SortKey(c.QueryParam("sort")),
	}
	switch q.Sort {
	case catalog.SortPriceAsc, catalog.SortPriceDesc, catalog.SortNameAsc, catalog.SortNameDesc:
	default:
		q.Sort = catalog.SortPriceAsc
	}
	return q
}

func listGallery(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	query := queryFromParams(c)
	items := query.Apply(ctx.Catalog().Products())
	// An empty result is the gallery's explicit no-results state, not an error.
	return ok(c, map[string]interface{}{
		"items": items,
		"total": len(items),
		"query": query,
	})
}

func listGalleryArtists(c echo.Context) error {
	return ok(c, webserver.AppCtx(c).Catalog().ArtistNames())
}

func getArtwork(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid artwork ID", nil)
	}
	p := webserver.AppCtx(c).Catalog().ByID(id)
	if p == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Artwork not found", nil)
	}
	return ok(c, p)
}
