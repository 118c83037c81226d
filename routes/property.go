package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/AchilleKettyetta/bstay/utils"
)

// GetProperties lists every property, or only those in the requested city
// when the location query parameter is set.
func (h *Handler) GetProperties(ctx iris.Context) {
	location := ctx.URLParamDefault("location", "")
	ctx.JSON(h.Store.ListProperties(location))
}

func (h *Handler) GetProperty(ctx iris.Context) {
	id, err := ctx.Params().GetInt64("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid property id.", ctx)
		return
	}

	property, ok := h.Store.GetProperty(id)
	if !ok {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.JSON(property)
}
