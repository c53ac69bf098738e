// Package router wires the HTTP routes to their handlers.
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"cafe_backend/internal/app/middleware"
	authhandler "cafe_backend/internal/feature/auth/transport/handler"
	cafehandler "cafe_backend/internal/feature/cafes/transport/handler"
	"cafe_backend/internal/platform/http/handler"
)

// credentialRateLimit bounds login/sign-up submissions per IP.
const (
	credentialRateLimit  = 10
	credentialRateWindow = time.Minute
)

// NewRouter builds the gin engine with templates loaded and every page
// behind the principal-resolution middleware.
func NewRouter(authH *authhandler.AuthHandler, cafeH *cafehandler.CafeHandler,
	currentUser gin.HandlerFunc, templatesGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templatesGlob)

	// Liveness probe, outside session resolution.
	r.GET("/healthz", handler.Health)

	pages := r.Group("/")
	pages.Use(currentUser)
	{
		pages.GET("/", cafeH.Home)

		pages.GET("/register", cafeH.ShowRegister)
		pages.POST("/register", cafeH.Register)
		pages.GET("/edit/:id", cafeH.ShowEdit)
		pages.POST("/edit/:id", cafeH.Edit)
		pages.GET("/delete/:id", cafeH.Delete)

		pages.GET("/sign-up", authH.ShowSignUp)
		pages.GET("/login", authH.ShowLogin)
		pages.GET("/logout", authH.Logout)

		// Credential submissions get a per-IP rate limit on top.
		limited := pages.Group("/")
		limited.Use(middleware.RateLimit(middleware.NewRateLimiter(credentialRateLimit, credentialRateWindow)))
		{
			limited.POST("/sign-up", authH.SignUp)
			limited.POST("/login", authH.Login)
		}
	}

	return r
}
