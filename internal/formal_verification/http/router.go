package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/verify/typecheck", h.TypeCheck)
	rg.POST("/verify/modelcheck", h.ModelCheck)
	rg.POST("/verify", h.Verify)

	rg.GET("/reports", h.ListReports)
	rg.GET("/reports/:id", h.GetReport)
	rg.GET("/reports/:id/markdown", h.GetReportMarkdown)
}
