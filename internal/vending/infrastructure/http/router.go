package http

import (
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/jwt"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Accounts  domain.AccountService
	Deposits  domain.DepositService
	Products  domain.ProductService
	Purchases domain.PurchaseService

	TokenParser  jwt.TokenParser
	TokenRevoker domain.TokenRevoker
	SecretKey    string
	Cookie       CookieSettings

	Logger logging.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NewRequestLoggerMiddleware(deps.Logger))

	usersHandler := NewUsersHandler(deps.Accounts, deps.Deposits, deps.Cookie, deps.Logger)
	productsHandler := NewProductsHandler(deps.Products, deps.Purchases, deps.Logger)
	authMiddleware := NewAuthMiddleware(deps.TokenParser, deps.SecretKey, deps.TokenRevoker, deps.Logger)

	api := router.Group("/api")
	{
		api.POST("/users", usersHandler.Register)
		api.POST("/users/auth", usersHandler.Authenticate)
		api.GET("/products", productsHandler.List)
		api.GET("/products/:"+IDKey, productsHandler.Get)

		authenticated := api.Group("/", authMiddleware)
		{
			authenticated.POST("/users/logout", usersHandler.Logout)
			authenticated.GET("/users/me", usersHandler.Me)
			authenticated.GET("/users", usersHandler.List)
			authenticated.PUT("/users/:"+IDKey, usersHandler.Update)
			authenticated.DELETE("/users/:"+IDKey, usersHandler.Delete)
			authenticated.PUT("/users/:"+IDKey+"/deposit", usersHandler.Deposit)
			authenticated.PUT("/users/:"+IDKey+"/reset", usersHandler.Reset)

			authenticated.POST("/products", productsHandler.Create)
			authenticated.PUT("/products/:"+IDKey, productsHandler.Update)
			authenticated.DELETE("/products/:"+IDKey, productsHandler.Delete)
			authenticated.POST("/products/:"+IDKey+"/buy", productsHandler.Buy)
		}
	}

	return router
}
