package routes

import (
	"property-market-server/services"
	"property-market-server/storage"
	"property-market-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateInterestInput struct {
	PropertyID uint   `json:"propertyID" validate:"required"`
	Message    string `json:"message" validate:"max=2000"`
}

// CreateInterest registers the authenticated user's interest in a property.
// Repeating the request returns the existing record.
func CreateInterest(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	var input CreateInterestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	properties := services.NewPropertyLookup(storage.DB)
	property, err := properties.GetByID(input.PropertyID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	interestService := services.NewInterestService(storage.DB)
	pending, err := interestService.CreateInterest(property.ID, property.ListerID, userID, input.Message)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(pending)
}

// ListPropertyInterests returns every interest record for a property, for
// the lister's review.
func ListPropertyInterests(ctx iris.Context) {
	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid property id")
		return
	}

	interestService := services.NewInterestService(storage.DB)
	pendings, listErr := interestService.ListByProperty(propertyID)
	if listErr != nil {
		handleServiceError(ctx, listErr)
		return
	}

	ctx.JSON(pendings)
}

// ConfirmInterest finalizes a pending interest. Only the property's lister
// may confirm.
func ConfirmInterest(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	pendingID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid pending interest id")
		return
	}

	interestService := services.NewInterestService(storage.DB)
	pending, getErr := interestService.GetByID(pendingID)
	if getErr != nil {
		handleServiceError(ctx, getErr)
		return
	}
	if pending.ListerID != userID {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"message": "Only the lister may confirm an interest"})
		return
	}

	confirmation := services.NewConfirmationService(storage.DB)
	property, confirmErr := confirmation.Confirm(pendingID)
	if confirmErr != nil {
		handleServiceError(ctx, confirmErr)
		return
	}

	ctx.JSON(property)
}
