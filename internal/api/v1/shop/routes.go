package shop

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	shops := router.Group("/shops")
	{
		shops.GET("/", ListShops)
		shops.POST("/", CreateShop)
		shops.GET("/:id/", GetShopDetail)
		shops.PATCH("/:id/", UpdateShop)
		shops.DELETE("/:id/", DeleteShop)
	}
}
