package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/api/http/middleware"
	fvhttp "github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/http"
)

type V1Deps struct {
	Pipeline  fvhttp.Pipeline
	RateRPS   float64
	RateBurst int
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(dep.RateRPS, dep.RateBurst))

	fvhttp.NewHandler(dep.Pipeline).Register(api)
}
