package server

import (
	"fmt"

	"vidfetch/config"
	"vidfetch/server/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Start() error {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(RequestLogger(), gin.Recovery(), CORS())

	download := handlers.NewDownloadHandler()
	formats := handlers.NewFormatsHandler()

	router.GET("/", handlers.Root)
	router.GET("/download", download.Handle)
	router.GET("/formats", formats.Handle)

	addr := fmt.Sprintf(":%d", config.Env.Port)
	zap.S().Infof("listening on %s", addr)
	return router.Run(addr)
}
