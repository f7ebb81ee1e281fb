package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"property-market-server/models"
	"property-market-server/storage"
	"property-market-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// buildTestApp creates a minimal iris app with the interest routes and JWT verifier
func buildTestApp(t *testing.T) *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	interest := app.Party("/api/interest", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		interest.Post("/", CreateInterest)
		interest.Post("/{id:uint}/confirm", ConfirmInterest)
	}

	require.NoError(t, app.Build())
	return app
}

func setupRoutesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PendingInterest{},
		&models.Review{},
	))

	storage.DB = db
	return db
}

// signTestToken returns a signed JWT for the given user id
func signTestToken(t *testing.T, id uint) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, err := signer.Sign(utils.AccessToken{ID: id, Role: "user"})
	require.NoError(t, err)
	return string(token)
}

func TestCreateInterestRoute(t *testing.T) {
	db := setupRoutesTestDB(t)
	app := buildTestApp(t)

	lister := models.User{Email: "lister@example.com", ReferralCode: "REF-L1"}
	require.NoError(t, db.Create(&lister).Error)
	buyer := models.User{Email: "buyer@example.com", ReferralCode: "REF-B1"}
	require.NoError(t, db.Create(&buyer).Error)
	property := models.Property{
		Kind: models.PropertyKindBuy, Slug: "test-home-1", Name: "Test Home",
		Price: 100000, Address: "1 Main St", IsAvailable: true, ListerID: lister.ID,
	}
	require.NoError(t, db.Create(&property).Error)

	t.Run("requires a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/interest", strings.NewReader(`{}`))
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		assert.NotEqual(t, http.StatusCreated, resp.Code)
	})

	t.Run("creates a pending interest", func(t *testing.T) {
		body := fmt.Sprintf(`{"propertyID": %d, "message": "still available?"}`, property.ID)
		req := httptest.NewRequest(http.MethodPost, "/api/interest", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, buyer.ID))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)

		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		var pending models.PendingInterest
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &pending))
		assert.Equal(t, property.ID, pending.PropertyID)
		assert.Equal(t, buyer.ID, pending.CounterpartyID)
		assert.Equal(t, models.InterestStatusPending, pending.Status)
	})

	t.Run("missing property is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/interest", strings.NewReader(`{"propertyID": 9999}`))
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, buyer.ID))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestConfirmInterestRoute(t *testing.T) {
	db := setupRoutesTestDB(t)
	app := buildTestApp(t)

	lister := models.User{Email: "lister2@example.com", ReferralCode: "REF-L2"}
	require.NoError(t, db.Create(&lister).Error)
	buyer := models.User{Email: "buyer2@example.com", ReferralCode: "REF-B2"}
	require.NoError(t, db.Create(&buyer).Error)
	property := models.Property{
		Kind: models.PropertyKindBuy, Slug: "test-home-2", Name: "Test Home",
		Price: 100000, Address: "1 Main St", IsAvailable: true, ListerID: lister.ID,
	}
	require.NoError(t, db.Create(&property).Error)
	pending := models.PendingInterest{
		PropertyID: property.ID, ListerID: lister.ID, CounterpartyID: buyer.ID,
		Status: models.InterestStatusPending,
	}
	require.NoError(t, db.Create(&pending).Error)

	t.Run("only the lister may confirm", func(t *testing.T) {
		url := fmt.Sprintf("/api/interest/%d/confirm", pending.ID)
		req := httptest.NewRequest(http.MethodPost, url, nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, buyer.ID))
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("lister confirms and finalizes the property", func(t *testing.T) {
		url := fmt.Sprintf("/api/interest/%d/confirm", pending.ID)
		req := httptest.NewRequest(http.MethodPost, url, nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, lister.ID))
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var finalized models.Property
		require.NoError(t, db.First(&finalized, property.ID).Error)
		assert.False(t, finalized.IsAvailable)
		require.NotNil(t, finalized.CounterpartyID)
		assert.Equal(t, buyer.ID, *finalized.CounterpartyID)
	})

	t.Run("second confirm is a conflict", func(t *testing.T) {
		url := fmt.Sprintf("/api/interest/%d/confirm", pending.ID)
		req := httptest.NewRequest(http.MethodPost, url, nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, lister.ID))
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}
