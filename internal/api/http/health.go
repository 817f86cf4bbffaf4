package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	depUp       = "up"
	depDown     = "down"
	depDisabled = "disabled"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
	Cache     string    `json:"cache,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          *pgxpool.Pool
	cache       *redis.Client
}

// NewHealthHandler accepts nil db or cache; they are then reported as disabled.
func NewHealthHandler(serviceName, version string, db *pgxpool.Pool, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		cache:       cache,
	}
}

func (h *HealthHandler) probe(ctx context.Context) HealthResponse {
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        depDisabled,
		Cache:     depDisabled,
	}
	if h.db != nil {
		resp.DB = depStatus(h.db.Ping(pingCtx))
	}
	if h.cache != nil {
		resp.Cache = depStatus(h.cache.Ping(pingCtx).Err())
	}
	return resp
}

func depStatus(err error) string {
	if err != nil {
		return depDown
	}
	return depUp
}

// HealthCheck is liveness: it always answers 200 and reports dependency
// status for information only.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.probe(c.Request.Context()))
}

// Ready answers 503 while any configured dependency is down.
func (h *HealthHandler) Ready(c *gin.Context) {
	resp := h.probe(c.Request.Context())
	if resp.DB == depDown || resp.Cache == depDown {
		resp.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp.Status = "ready"
	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
	r.GET("/readyz", h.Ready)
}
