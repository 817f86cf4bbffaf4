package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/report"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/repository"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/verification"
)

const maxBodyBytes = 4 << 20

// Pipeline is the part of service.Pipeline the handlers use.
type Pipeline interface {
	TypeCheck(ctx context.Context, in *service.Input) (domain.VerificationResult, error)
	ModelCheck(ctx context.Context, in *service.Input) (*verification.ModelReport, error)
	Verify(ctx context.Context, in *service.Input, strategies []verification.Strategy) (*report.Report, error)
	Report(ctx context.Context, id string) (*report.Report, error)
	Reports(ctx context.Context, architecture string, limit int) ([]repository.ReportHeader, error)
}

type Handler struct {
	pipeline Pipeline
}

func NewHandler(p Pipeline) *Handler {
	return &Handler{pipeline: p}
}

// readInput accepts a JSON VerifyRequest envelope, or the raw YAML/JSON
// architecture document for any other content type.
func readInput(c *gin.Context) (*service.Input, []string, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, err
	}

	if !strings.HasPrefix(c.ContentType(), "application/json") {
		in, err := service.Load(body)
		return in, nil, err
	}

	var req VerifyRequest
	if err := strictJSON(body, &req); err != nil || (req.Spec == "" && req.Architecture == nil) {
		// not an envelope, treat the body as the document itself
		in, err := service.Load(body)
		return in, nil, err
	}
	if req.Architecture != nil {
		in, err := service.FromSpec(req.Architecture)
		return in, req.Strategies, err
	}
	in, err := service.Load([]byte(req.Spec))
	return in, req.Strategies, err
}

func status(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, verification.ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoReportStore):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, operation string, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		service.NewLogger(c.Request.Context()).LogError(operation, err)
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

func (h *Handler) TypeCheck(c *gin.Context) {
	in, _, err := readInput(c)
	if err != nil {
		fail(c, "typecheck", err)
		return
	}
	r, err := h.pipeline.TypeCheck(c.Request.Context(), in)
	if err != nil {
		fail(c, "typecheck", err)
		return
	}
	c.JSON(http.StatusOK, TypeCheckResponse{Architecture: in.Architecture.Name, Result: r})
}

func (h *Handler) ModelCheck(c *gin.Context) {
	in, _, err := readInput(c)
	if err != nil {
		fail(c, "modelcheck", err)
		return
	}
	mr, err := h.pipeline.ModelCheck(c.Request.Context(), in)
	if err != nil {
		fail(c, "modelcheck", err)
		return
	}
	c.JSON(http.StatusOK, ModelCheckResponse{
		Architecture: in.Architecture.Name,
		Result:       mr.Result,
		Properties:   mr.Properties,
	})
}

func (h *Handler) Verify(c *gin.Context) {
	in, names, err := readInput(c)
	if err != nil {
		fail(c, "verify", err)
		return
	}
	if q := c.Query("strategies"); q != "" {
		names = strings.Split(q, ",")
	}

	strategies := make([]verification.Strategy, 0, len(names))
	for _, n := range names {
		s, err := verification.ParseStrategy(strings.TrimSpace(n))
		if err != nil {
			fail(c, "verify", err)
			return
		}
		strategies = append(strategies, s)
	}

	rep, err := h.pipeline.Verify(c.Request.Context(), in, strategies)
	if err != nil {
		fail(c, "verify", err)
		return
	}
	c.JSON(http.StatusOK, ReportResponse{Report: rep})
}

func (h *Handler) GetReport(c *gin.Context) {
	rep, err := h.pipeline.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "get_report", err)
		return
	}
	c.JSON(http.StatusOK, ReportResponse{Report: rep})
}

func (h *Handler) GetReportMarkdown(c *gin.Context) {
	rep, err := h.pipeline.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "get_report", err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(rep.Markdown()))
}

func (h *Handler) ListReports(c *gin.Context) {
	arch := strings.TrimSpace(c.Query("architecture"))
	if arch == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "architecture query parameter is required"})
		return
	}
	limit := 0
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	headers, err := h.pipeline.Reports(c.Request.Context(), arch, limit)
	if err != nil {
		fail(c, "list_reports", err)
		return
	}
	c.JSON(http.StatusOK, ReportListResponse{Reports: headers})
}
