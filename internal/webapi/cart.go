package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artistry-gallery/artistry/internal/accessgate"
	"github.com/artistry-gallery/artistry/internal/app"
	"github.com/artistry-gallery/artistry/internal/webserver"
)

type addCartPayload struct {
	ProductID int64 `json:"productId" form:"productId"`
}

type quantityPayload struct {
	Quantity int `json:"quantity" form:"quantity"`
}

func registerCartRoutes() {
	gate := webserver.Gate(accessgate.ViewCart)
	webserver.GET(accessgate.ViewCart.Path(), getCart, gate)
	webserver.ApiGET("/cart", getCart, gate)
	webserver.ApiPOST("/cart/items", addCartItem, gate)
	webserver.ApiPUT("/cart/items/:id", setCartQuantity, gate)
	webserver.ApiDELETE("/cart/items/:id", removeCartItem, gate)
	webserver.ApiPOST("/cart/checkout", checkout, gate)
}

func cartPayload(c echo.Context) map[string]interface{} {
	ledger := webserver.AppCtx(c).Carts().Ledger(webserver.DeviceID(c))
	return map[string]interface{}{
		"items":   ledger.Items(),
		"summary": ledger.Summary(),
	}
}

func getCart(c echo.Context) error {
	return ok(c, cartPayload(c))
}

func addCartItem(c echo.Context) error {
	var payload addCartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart request", nil)
	}
	ctx := webserver.AppCtx(c)
	product := ctx.Catalog().ByID(payload.ProductID)
	if product == nil {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Artwork not found", nil)
	}
	ledger := ctx.Carts().Ledger(webserver.DeviceID(c))
	if err := ledger.Add(*product); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update cart", err.Error())
	}
	return ok(c, cartPayload(c))
}

func setCartQuantity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid artwork ID", nil)
	}
	var payload quantityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart request", nil)
	}
	ledger := webserver.AppCtx(c).Carts().Ledger(webserver.DeviceID(c))
	if err := ledger.SetQuantity(id, payload.Quantity); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update cart", err.Error())
	}
	return ok(c, cartPayload(c))
}

func removeCartItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid artwork ID", nil)
	}
	ledger := webserver.AppCtx(c).Carts().Ledger(webserver.DeviceID(c))
	if err := ledger.Remove(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update cart", err.Error())
	}
	return ok(c, cartPayload(c))
}

// checkout empties the ledger. No order record is produced anywhere; the
// order history fixture stays untouched.
func checkout(c echo.Context) error {
	ctx := webserver.AppCtx(c)
	deviceID := webserver.DeviceID(c)
	ledger := ctx.Carts().Ledger(deviceID)
	summary := ledger.Summary()
	if err := ledger.Clear(); err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to clear cart", err.Error())
	}
	if acct := webserver.Account(c); acct != nil {
		ctx.Bus().Publish(app.TopicCartCheckout, deviceID, acct.Email)
	}
	return ok(c, map[string]interface{}{
		"cleared":  true,
		"checkout": summary,
	})
}
