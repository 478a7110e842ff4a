package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/tetteam4/swimming-project/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register/", Register)
	auth.POST("/token/", Token)
	auth.POST("/refresh/", Refresh)
	auth.POST("/logout/", middleware.AuthMiddleware(), Logout)
	auth.GET("/user/password-reset/:email/", PasswordReset)
	auth.POST("/user/password-change/", PasswordChange)
	auth.GET("/activate/:uidb64/:token/", Activate)
}
