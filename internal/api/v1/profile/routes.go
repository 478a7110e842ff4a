package profile

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	{
		profiles.GET("/me/", Me)
		profiles.GET("/all/", All)
		profiles.PATCH("/me/update/", Update)
	}
}
