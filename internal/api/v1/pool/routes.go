package pool

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	pools := router.Group("/pools")
	{
		pools.GET("/", ListPools)
		pools.POST("/", CreatePool)
		pools.GET("/:id/", GetPoolDetail)
		pools.PATCH("/:id/", UpdatePool)
		pools.DELETE("/:id/", DeletePool)
	}
}
