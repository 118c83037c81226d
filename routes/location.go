package routes

import "github.com/kataras/iris/v12"

// GetAvailableLocations returns the distinct city keys with listings, for
// the destination picker.
func (h *Handler) GetAvailableLocations(ctx iris.Context) {
	ctx.JSON(iris.Map{"locations": h.Store.Locations()})
}
