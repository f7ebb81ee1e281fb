package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateNotFound(ctx iris.Context) {
	JSONError(ctx, iris.StatusNotFound, "not_found", "resource not found")
}

func CreateInternalServerError(ctx iris.Context) {
	JSONError(ctx, iris.StatusInternalServerError, "internal_error", "an unexpected error occurred")
}

// HandleValidationErrors writes a 400 with the failing fields, or a generic
// bad-request when the error did not come from the validator.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, fieldErr.Field()+" failed on "+fieldErr.Tag())
		}
		JSONError(ctx, iris.StatusBadRequest, "validation_error", strings.Join(fields, "; "))
		return
	}
	JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid request body")
}
