// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/insight"
	domainerror "github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/error"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/dto"
)

// InsightController handles AI insight and receipt extraction endpoints.
type InsightController struct {
	insightsUseCase *insight.GetInsightsUseCase
	scanUseCase     *insight.ScanReceiptUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	insightsUseCase *insight.GetInsightsUseCase,
	scanUseCase *insight.ScanReceiptUseCase,
) *InsightController {
	return &InsightController{
		insightsUseCase: insightsUseCase,
		scanUseCase:     scanUseCase,
	}
}

// GetInsights handles POST /insights requests. Provider failures never reach
// this handler as errors; the use case substitutes the fallback list.
func (c *InsightController) GetInsights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate insights",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightsResponse{
		Insights: output.Insights,
		Fallback: output.Fallback,
		Cached:   output.Cached,
	})
}

// ScanReceipt handles POST /receipts/scan requests. Extraction failures do
// propagate: there is no safe draft to fabricate.
func (c *InsightController) ScanReceipt(ctx *gin.Context) {
	var req dto.ScanReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Image must be valid base64",
		})
		return
	}

	input := insight.ScanReceiptInput{
		ImageData: imageData,
		MimeType:  req.MimeType,
	}

	draft, err := c.scanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleScanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptDraftResponse(draft))
}

// handleScanError maps extraction failures onto upstream-failure responses.
func (c *InsightController) handleScanError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrGatewayUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Receipt extraction is not configured",
			Code:  string(domainerror.ErrCodeGatewayUnavailable),
		})
		return
	}

	var gtwErr *domainerror.GatewayError
	if errors.As(err, &gtwErr) {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: gtwErr.Message,
			Code:  string(gtwErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
		Error: "Receipt extraction failed",
	})
}
