package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"github.com/AchilleKettyetta/bstay/services"
	"github.com/AchilleKettyetta/bstay/utils"
)

type CreateReservationInput struct {
	PropertyID int64  `json:"propertyId" validate:"required"`
	Checkin    string `json:"checkin" validate:"required"`
	Checkout   string `json:"checkout" validate:"required"`
}

func (h *Handler) CreateReservation(ctx iris.Context) {
	var input CreateReservationInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	reservation, bookErr := h.Engine.CreateReservation(ctx.Request().Context(), input.PropertyID, input.Checkin, input.Checkout)
	if bookErr != nil {
		switch {
		case errors.Is(bookErr, services.ErrNotAuthenticated):
			utils.CreateError(iris.StatusUnauthorized, "Reservation Error", "Please log in to make a reservation.", ctx)
		case errors.Is(bookErr, services.ErrPropertyNotFound):
			utils.CreateError(iris.StatusNotFound, "Reservation Error", "Property not found.", ctx)
		case errors.Is(bookErr, services.ErrInvalidDateRange):
			utils.CreateError(iris.StatusBadRequest, "Reservation Error", "Checkout must be after checkin.", ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(reservation)
}

// GetUserReservations lists the reservations of the user in the path. Only
// the logged-in user may read their own list.
func (h *Handler) GetUserReservations(ctx iris.Context) {
	id, err := ctx.Params().GetInt64("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Invalid user id.", ctx)
		return
	}

	user := h.Store.CurrentUser()
	if user == nil {
		utils.CreateError(iris.StatusUnauthorized, "Session Error", "Please log in first.", ctx)
		return
	}
	if user.ID != id {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "you can only view your own reservations"})
		return
	}

	ctx.JSON(h.Store.ListReservationsForUser(id))
}
