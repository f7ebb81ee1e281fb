package routes

import (
	"property-market-server/services"
	"property-market-server/storage"
	"property-market-server/utils"

	"github.com/kataras/iris/v12"
)

// GetUser returns the authenticated user's own record; the route is
// guarded so the id parameter must match the token.
func GetUser(ctx iris.Context) {
	userID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid user id")
		return
	}

	lookup := services.NewUserLookup(storage.DB)
	user, lookupErr := lookup.GetByID(userID)
	if lookupErr != nil {
		handleServiceError(ctx, lookupErr)
		return
	}

	ctx.JSON(user)
}

// VerifyUser marks the authenticated user's account verified and triggers
// the referral reward cascade. Verifying twice fails with a conflict.
func VerifyUser(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	referralService := services.NewReferralService(storage.DB)
	user, err := referralService.VerifyAndCascade(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(user)
}
