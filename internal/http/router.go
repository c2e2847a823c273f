package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y las rutas de mensajes bajo basePath.
func NewRouter(logger *zap.Logger, basePath string, msgH *MessageHandler) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	if basePath == "" {
		basePath = "/"
	}
	// En la raíz, /healthz sería un id de mensaje válido.
	if basePath != "/" {
		r.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
	msgs := r.Group(basePath)
	msgs.GET("", msgH.List)
	msgs.POST("", msgH.Create)
	msgs.GET("/firstAndLast", msgH.FirstAndLast)
	msgs.GET("/firstMessageLongerThan10", msgH.FirstLongerThan10)
	msgs.GET("/firstMessageLongerThan10OrNull", msgH.FirstLongerThan10OrDefault)
	msgs.GET("/filterMessagesLongerThan10", msgH.FilterLongerThan10)
	msgs.GET("/sortByLastLetter", msgH.SortByLastLetter)
	msgs.GET("/groups", msgH.Groups)
	msgs.GET("/transformMessagesToListOfStrings", msgH.ToStrings)
	msgs.GET("/averageMessageLength", msgH.AverageLength)
	msgs.GET("/findTheLongestMessage", msgH.Longest)
	msgs.GET("/:id", msgH.GetByID)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
