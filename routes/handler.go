package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/AchilleKettyetta/bstay/services"
	"github.com/AchilleKettyetta/bstay/storage"
	"github.com/AchilleKettyetta/bstay/utils"
)

// Handler wires the HTTP surface to the domain store and booking engine. It
// holds no state of its own; every request reads from or writes through the
// store.
type Handler struct {
	Store  *storage.Store
	Engine *services.BookingEngine
}

func NewHandler(store *storage.Store, engine *services.BookingEngine) *Handler {
	return &Handler{Store: store, Engine: engine}
}

// RequireSession rejects requests made without a logged-in user.
func (h *Handler) RequireSession(ctx iris.Context) {
	if h.Store.CurrentUser() == nil {
		utils.CreateError(iris.StatusUnauthorized, "Session Error", "Please log in first.", ctx)
		return
	}
	ctx.Next()
}
