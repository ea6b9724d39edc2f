package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-tenant-user-api/internal/core/auth"
	"go-tenant-user-api/internal/transport/graphql"
	"go-tenant-user-api/internal/transport/http/handler"
	mdw "go-tenant-user-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, authH *handler.AuthHandler, gqlH *graphql.Handler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		ginzap.Ginzap(l, time.RFC3339, true),
		mdw.Recovery(l),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// login is the only public surface
	public := r.Group("")
	authH.Register(public)

	// every GraphQL operation requires an authenticated actor
	authed := r.Group("")
	authed.Use(mdw.AuthJWT(jwter))
	gqlH.Register(authed)

	return r
}
