package routes

import (
	"errors"

	"property-market-server/logging"
	"property-market-server/services"
	"property-market-server/utils"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// handleServiceError maps the service error kinds onto HTTP statuses.
// Transaction failures are retryable and reported as 500s.
func handleServiceError(ctx iris.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(ctx, iris.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(ctx, iris.StatusConflict, "conflict", err.Error())
	default:
		logging.Logger.Error("operation failed", zap.Error(err))
		utils.JSONError(ctx, iris.StatusInternalServerError, "transaction_failure", "operation failed, please retry")
	}
}

func contextUserID(ctx iris.Context) (uint, bool) {
	userIDValue := ctx.Values().Get("userID")
	if userIDValue == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"message": "User not authenticated"})
		return 0, false
	}

	userID, ok := userIDValue.(uint)
	if !ok {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"message": "Invalid user ID"})
		return 0, false
	}
	return userID, true
}
