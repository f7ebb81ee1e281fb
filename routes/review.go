package routes

import (
	"property-market-server/services"
	"property-market-server/storage"
	"property-market-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=4000"`
}

// CreateReview records a review for a finalized property by its
// counterparty. Positive ratings earn the author a point.
func CreateReview(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid property id")
		return
	}

	var input CreateReviewInput
	if readErr := ctx.ReadJSON(&input); readErr != nil {
		utils.HandleValidationErrors(readErr, ctx)
		return
	}

	reviewService := services.NewReviewService(storage.DB)
	review, createErr := reviewService.CreateReview(propertyID, userID, input.Rating, input.Comment)
	if createErr != nil {
		handleServiceError(ctx, createErr)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}

func ListPropertyReviews(ctx iris.Context) {
	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid property id")
		return
	}

	reviewService := services.NewReviewService(storage.DB)
	reviews, listErr := reviewService.ListByProperty(propertyID)
	if listErr != nil {
		handleServiceError(ctx, listErr)
		return
	}

	ctx.JSON(reviews)
}
