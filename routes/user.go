package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"github.com/AchilleKettyetta/bstay/storage"
	"github.com/AchilleKettyetta/bstay/utils"
)

func (h *Handler) Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !utils.ValidatePhoneNumber(userInput.Phone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid phone number format. Burkinabè phone numbers must be 8 digits starting with 5, 6, or 7.", ctx)
		return
	}

	user, registerErr := h.Store.Register(ctx.Request().Context(), userInput.Name, userInput.Email, userInput.Phone, userInput.Password)
	if registerErr != nil {
		if errors.Is(registerErr, storage.ErrEmailTaken) {
			utils.CreateError(iris.StatusConflict, "Registration Error", "This email is already registered.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(user)
}

func (h *Handler) Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, loginErr := h.Store.Authenticate(ctx.Request().Context(), userInput.Email, userInput.Password)
	if loginErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid email or password.", ctx)
		return
	}

	ctx.JSON(user)
}

func (h *Handler) Logout(ctx iris.Context) {
	h.Store.Logout(ctx.Request().Context())
	ctx.JSON(iris.Map{"success": true})
}

// GetSession returns the logged-in user, 401 when anonymous. The client is
// expected to re-check this after logout rather than rely on cached state.
func (h *Handler) GetSession(ctx iris.Context) {
	user := h.Store.CurrentUser()
	if user == nil {
		utils.CreateError(iris.StatusUnauthorized, "Session Error", "Not logged in.", ctx)
		return
	}
	ctx.JSON(user)
}

type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,max=256,email"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Password string `json:"password" validate:"required,min=4,max=256"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
