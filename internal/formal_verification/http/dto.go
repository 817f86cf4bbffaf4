package http

import (
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/parser"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/report"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/repository"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/verification"
)

// VerifyRequest carries either a YAML/JSON document in Spec or an already
// structured Architecture. Strategies only applies to /verify.
type VerifyRequest struct {
	Spec         string           `json:"spec,omitempty"`
	Architecture *parser.ArchSpec `json:"architecture,omitempty"`
	Strategies   []string         `json:"strategies,omitempty"`
}

type TypeCheckResponse struct {
	Architecture string                    `json:"architecture"`
	Result       domain.VerificationResult `json:"result"`
}

type ModelCheckResponse struct {
	Architecture string                         `json:"architecture"`
	Result       domain.VerificationResult      `json:"result"`
	Properties   []verification.PropertyOutcome `json:"properties"`
}

type ReportResponse struct {
	Report *report.Report `json:"report"`
}

type ReportListResponse struct {
	Reports []repository.ReportHeader `json:"reports"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
