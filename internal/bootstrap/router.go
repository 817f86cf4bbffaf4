package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/GoSim-25-26J-441/go-sim-archverify/internal/api/http"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/api/http/routes"
	fvhttp "github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int

	// DB and Redis are optional and only used for health reporting.
	DB    *pgxpool.Pool
	Redis *redis.Client

	Pipeline fvhttp.Pipeline
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterV1(r, routes.V1Deps{
		Pipeline:  dep.Pipeline,
		RateRPS:   dep.RateRPS,
		RateBurst: dep.RateBurst,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
