package routes

import (
	"encoding/json"

	"property-market-server/models"
	"property-market-server/services"
	"property-market-server/storage"
	"property-market-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

// jsonArray encodes a string slice for a JSON column, never null.
func jsonArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(encoded)
}

type CreateListingInput struct {
	Kind        string   `json:"kind" validate:"required,oneof=rent buy"`
	Name        string   `json:"name" validate:"required,max=256"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Address     string   `json:"address" validate:"required"`
	Bed         int      `json:"bed" validate:"min=0"`
	Bath        int      `json:"bath" validate:"min=0"`
	Size        string   `json:"size"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	// Months; required for rent listings.
	LeaseTerm int `json:"leaseTerm" validate:"required_if=Kind rent"`
}

// CreateListing creates a rent or buy listing for the authenticated user.
func CreateListing(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	var input CreateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property := models.Property{
		Kind:        input.Kind,
		Slug:        utils.GenerateSlug(input.Name),
		Name:        input.Name,
		Price:       input.Price,
		Address:     input.Address,
		Bed:         input.Bed,
		Bath:        input.Bath,
		Size:        input.Size,
		Description: input.Description,
		Amenities:   jsonArray(input.Amenities),
		Images:      jsonArray(input.Images),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsAvailable: true,
		LeaseTerm:   input.LeaseTerm,
		ListerID:    userID,
	}

	if err := storage.DB.Create(&property).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(property)
}

func GetProperty(ctx iris.Context) {
	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid property id")
		return
	}

	lookup := services.NewPropertyLookup(storage.DB)
	property, lookupErr := lookup.GetByID(propertyID)
	if lookupErr != nil {
		handleServiceError(ctx, lookupErr)
		return
	}

	ctx.JSON(property)
}

func GetPropertyBySlug(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	lookup := services.NewPropertyLookup(storage.DB)
	property, err := lookup.GetBySlug(slug)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(property)
}

// ListAvailableProperties lists open listings, optionally filtered by kind.
func ListAvailableProperties(ctx iris.Context) {
	kind := ctx.URLParam("kind")
	if kind != "" && kind != models.PropertyKindRent && kind != models.PropertyKindBuy {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "kind must be rent or buy")
		return
	}

	lookup := services.NewPropertyLookup(storage.DB)
	properties, err := lookup.ListAvailable(kind)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(properties)
}

// PromoteListing features a listing, spending one of the lister's slots or
// vouchers. Only the lister may promote their own listing.
func PromoteListing(ctx iris.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		return
	}

	propertyID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "bad_request", "invalid property id")
		return
	}

	lookup := services.NewPropertyLookup(storage.DB)
	property, lookupErr := lookup.GetByID(propertyID)
	if lookupErr != nil {
		handleServiceError(ctx, lookupErr)
		return
	}
	if property.ListerID != userID {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"message": "Only the lister may promote this listing"})
		return
	}

	promotion := services.NewPromotionService(storage.DB)
	promoted, promoteErr := promotion.PromoteListing(propertyID)
	if promoteErr != nil {
		handleServiceError(ctx, promoteErr)
		return
	}

	ctx.JSON(promoted)
}
