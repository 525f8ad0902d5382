package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/red326/media-client-management/internal/model"
	"github.com/red326/media-client-management/internal/report"
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateReportKind parses the export type parameter. Empty defaults to
// the combined report.
func ValidateReportKind(raw string) (report.Kind, string) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return report.KindCombined, ""
	}
	kind := report.Kind(raw)
	if !kind.Valid() {
		return "", "type must be one of: creators, videos, payments, combined"
	}
	return kind, ""
}

// ValidateExportFormat parses the export format parameter. Empty defaults
// to CSV for single-table kinds and workbook for the combined report.
func ValidateExportFormat(raw string, kind report.Kind) (report.Format, string) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		if kind == report.KindCombined {
			return report.FormatWorkbook, ""
		}
		return report.FormatCSV, ""
	}
	format := report.Format(raw)
	if !format.Valid() {
		return "", "format must be one of: csv, xlsx"
	}
	return format, ""
}

// ValidatePaymentState checks the payment status filter value.
func ValidatePaymentState(raw string) (model.PaymentState, string) {
	state := model.PaymentState(strings.TrimSpace(strings.ToLower(raw)))
	if !state.Valid() {
		return "", "status must be one of: pending, paid"
	}
	return state, ""
}

// ValidateID parses a positive numeric identifier.
func ValidateID(raw string) (int64, string) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, "id must be a positive integer"
	}
	return id, ""
}

