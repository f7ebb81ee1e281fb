package main

import (
	"fmt"
	"log"
	"os"

	"property-market-server/logging"
	"property-market-server/routes"
	"property-market-server/storage"
	"property-market-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()

	if err := logging.InitLogger(os.Getenv("RENDER") != ""); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	storage.InitializeDB()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// Access tokens are issued by the surrounding auth service; this server
	// only verifies them.
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	property := app.Party("/api/property")
	{
		property.Get("/available", routes.ListAvailableProperties)
		property.Get("/slug/{slug}", routes.GetPropertyBySlug)
		property.Get("/{id:uint}", routes.GetProperty)
		property.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateListing)
		property.Post("/{id:uint}/promote", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.PromoteListing)
		property.Get("/{id:uint}/interests", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.ListPropertyInterests)
		property.Post("/{id:uint}/reviews", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateReview)
		property.Get("/{id:uint}/reviews", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.ListPropertyReviews)
	}

	interest := app.Party("/api/interest")
	{
		interest.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateInterest)
		interest.Post("/{id:uint}/confirm", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.ConfirmInterest)
	}

	user := app.Party("/api/user")
	{
		user.Get("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.GetUser)
		user.Post("/verify", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.VerifyUser)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
