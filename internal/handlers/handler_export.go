package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Transactions"

var exportHeaders = []string{"Date", "Description", "Type", "Amount", "Asset", "Debt"}

// exportTransactions streams every live transaction as CSV (default) or XLSX.
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}

	txns, err := h.transactionService.ListAllTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "export transactions")
		return
	}

	filename := fmt.Sprintf("transactions_%s.%s", time.Now().UTC().Format("20060102"), format)
	logger.Info("Exporting transactions", slog.String("format", format), slog.Int("count", len(txns)))

	if format == "xlsx" {
		writeXLSX(c, logger, txns, filename)
		return
	}
	writeCSV(c, logger, txns, filename)
}

func exportRow(t domain.Transaction) []string {
	return []string{
		t.Date.Format(dto.DateLayout),
		t.Description,
		string(t.Type),
		t.Amount.String(),
		derefOrEmpty(t.AssetName),
		derefOrEmpty(t.DebtName),
	}
}

func writeCSV(c *gin.Context, logger *slog.Logger, txns []domain.Transaction, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeaders); err != nil {
		logger.Error("Failed to write CSV header", slog.String("error", err.Error()))
		return
	}
	for _, t := range txns {
		if err := writer.Write(exportRow(t)); err != nil {
			logger.Error("Failed to write CSV row", slog.String("error", err.Error()))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Error("Failed to flush CSV export", slog.String("error", err.Error()))
	}
}

func writeXLSX(c *gin.Context, logger *slog.Logger, txns []domain.Transaction, filename string) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", slog.String("error", err.Error()))
		}
	}()

	if err := fillWorkbook(f, txns); err != nil {
		logger.Error("Failed to build workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to write workbook", slog.String("error", err.Error()))
	}
}

func fillWorkbook(f *excelize.File, txns []domain.Transaction) error {
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	for i, t := range txns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			t.Date.Format(dto.DateLayout),
			t.Description,
			string(t.Type),
			t.Amount.InexactFloat64(),
			derefOrEmpty(t.AssetName),
			derefOrEmpty(t.DebtName),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 12); err != nil {
		return err
	}
	return f.SetColWidth(exportSheet, "B", "B", 30)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
