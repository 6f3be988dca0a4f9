package webapi

import (
	"github.com/labstack/echo/v4"

	"github.com/artistry-gallery/artistry/internal/accessgate"
	"github.com/artistry-gallery/artistry/internal/webserver"
)

func registerProfileRoutes() {
	gate := webserver.Gate(accessgate.ViewProfile)
	webserver.GET(accessgate.ViewProfile.Path(), getProfile, gate)
	webserver.ApiGET("/profile", getProfile, gate)
	webserver.ApiGET("/profile/orders", listOrders, gate)
}

func getProfile(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	orders := ctx.OrdersByUser(acct.ID)

	var spent float64
	for _, o := range orders {
		spent += o.TotalAmount
	}
	return ok(c, map[string]interface{}{
		"user":        acct,
		"totalOrders": len(orders),
		"totalSpent":  spent,
	})
}

func listOrders(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	acct := webserver.Account(c)
	// No orders yet is a valid empty state for new collectors.
	return ok(c, ctx.OrdersByUser(acct.ID))
}
