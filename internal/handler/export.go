package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/red326/media-client-management/internal/middleware"
	"github.com/red326/media-client-management/internal/report"
	"github.com/red326/media-client-management/internal/service"
)

type ExportHandler struct {
	svc *service.ReportService
}

func NewExportHandler(svc *service.ReportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export handles GET /api/export?type=<kind>&format=<format>
// Streams the serialized report as a file download. The skipped-record
// count is surfaced in X-Skipped-Records so the UI can show a
// partial-success message.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	kind, errMsg := middleware.ValidateReportKind(fiber.Query[string](c, "type"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_KIND", errMsg)
	}

	format, errMsg := middleware.ValidateExportFormat(fiber.Query[string](c, "format"), kind)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FORMAT", errMsg)
	}

	exp, err := h.svc.BuildReport(c.Context(), kind, format)
	if err != nil {
		return exportError(c, err)
	}

	Metrics.ExportsTotal.WithLabelValues(string(kind), string(format)).Inc()

	c.Set("Content-Type", contentType(format))
	c.Set("Content-Disposition", `attachment; filename="`+exp.Filename+`"`)
	if exp.SkippedVideos > 0 {
		c.Set("X-Skipped-Records", strconv.Itoa(exp.SkippedVideos))
	}
	return c.Send(exp.Payload)
}

func exportError(c fiber.Ctx, err error) error {
	var mismatch *report.FormatMismatchError
	var serialization *report.SerializationError

	switch {
	case errors.As(err, &mismatch):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "FORMAT_MISMATCH", err.Error())
	case errors.Is(err, report.ErrEmptyInput):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "EMPTY_INPUT", err.Error())
	case errors.As(err, &serialization):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "SERIALIZATION_ERROR", err.Error())
	}
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
}

func contentType(format report.Format) string {
	if format == report.FormatWorkbook {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}
