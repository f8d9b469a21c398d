package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"rigvalue/internal/app"
	"rigvalue/internal/logger"
	"rigvalue/internal/repository"
	"rigvalue/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                           *sql.DB
	ValuationService             service.ValuationService
	RevaluerHandler              app.RevaluerHandler
	ListingRepository            repository.ListingRepository
	ComponentRepository          repository.ComponentRepository
	ValuationBreakdownRepository repository.ValuationBreakdownRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to rigvalue"})
	})

	router.POST("/revalue", m.revalue)
	router.POST("/revalueAll", m.revalueAll)
	router.POST("/processQueue", m.processQueue)

	router.GET("/listings/:id/breakdown", m.getBreakdown)
	router.GET("/components/:id/priceTargets", m.getPriceTargets)

	router.POST("/triggers/ruleChanged", m.ruleChanged)
	router.POST("/triggers/profileChanged", m.profileChanged)
	router.POST("/triggers/componentBenchmarkUpdated", m.componentBenchmarkUpdated)
	router.POST("/triggers/listingPriceChanged", m.listingPriceChanged)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	lg := logger.FromContext(ctx).With(
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set(logger.ContextKey, lg)

	start := time.Now().UTC()
	ctx.Next()

	lg.Infow("request handled",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

// requestContext carries the per-request logger into the service layer.
func requestContext(c *gin.Context) context.Context {
	return context.WithValue(c.Request.Context(), logger.ContextKey, logger.FromContext(c))
}
