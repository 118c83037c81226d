package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

// CreateError writes the error envelope and stops the handler chain.
func CreateError(status int, code, message string, ctx iris.Context) {
	JSONError(ctx, status, code, message)
	ctx.StopExecution()
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

type fieldError struct {
	Tag       string `json:"tag"`
	Namespace string `json:"namespace"`
	Param     string `json:"param"`
}

// HandleValidationErrors maps a ReadJSON failure to a 400 with per-field
// details when the body failed validation.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]fieldError, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fieldError{
				Tag:       fe.ActualTag(),
				Namespace: fe.Namespace(),
				Param:     fe.Param(),
			})
		}
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{
			"error":   "Validation Error",
			"message": "One or more fields failed validation.",
			"fields":  fields,
		})
		ctx.StopExecution()
		return
	}
	CreateError(iris.StatusBadRequest, "Bad Request", err.Error(), ctx)
}
