package api

import (
	"trafficapi/api/handler"
	"trafficapi/api/middleware"
	"trafficapi/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置API路由
func SetupRouter(services *service.Services) *gin.Engine {
	// 日志和恢复使用自己的中间件，不用 gin.Default
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	router.GET("/traffic", handler.GetTraffic(services.TrafficQuery))

	return router
}
