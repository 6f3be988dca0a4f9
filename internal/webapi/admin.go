package webapi

import (
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"github.com/artistry-gallery/artistry/internal/accessgate"
	"github.com/artistry-gallery/artistry/internal/domain"
	"github.com/artistry-gallery/artistry/internal/webserver"
)

func registerAdminRoutes() {
	gate := webserver.Gate(accessgate.ViewAdminDashboard)
	webserver.GET(accessgate.ViewAdminDashboard.Path(), adminSummary, gate)
	webserver.ApiGET("/admin/summary", adminSummary, gate)
	webserver.ApiGET("/admin/artists", listAdminArtists, gate)
	webserver.ApiGET("/admin/export/products.csv", exportProducts, gate)
}

func adminSummary(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	products := ctx.Catalog().Products()

	prices := lo.Map(products, func(p domain.Product, _ int) float64 {
		return p.EffectivePrice()
	})
	totalValue, _ := stats.Sum(prices)
	averagePrice, _ := stats.Mean(prices)

	return ok(c, map[string]interface{}{
		"totalArtists":  len(ctx.Identity().Artists()),
		"totalArtworks": len(products),
		"totalValue":    totalValue,
		"averagePrice":  averagePrice,
	})
}

// adminArtistView strips credentials from the fixture account.
type adminArtistView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio,omitempty"`
	ArtworkCount int    `json:"artworkCount"`
}

func listAdminArtists(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	views := lo.Map(ctx.Identity().Artists(), func(a domain.Account, _ int) adminArtistView {
		return adminArtistView{
			ID:           a.ID,
			Name:         a.Name,
			Email:        a.Email,
			Avatar:       a.Avatar,
			Bio:          a.Bio,
			ArtworkCount: len(ctx.Catalog().ByArtist(a.ID)),
		}
	})

	page, perPage := parsePagination(c)
	total := len(views)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return paged(c, views[start:end], total, page, perPage)
}

func exportProducts(c echo.Context) error {
	products := webserver.AppCtx(c).Catalog().Products()
	out, err := gocsv.MarshalString(&products)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export catalog", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
