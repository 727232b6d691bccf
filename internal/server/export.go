package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/calendar"
)

const exportSheet = "Transactions"

var exportHeader = []string{"Date", "Type", "Category", "Amount", "Description"}

func exportRow(t transaction.Transaction) []string {
	return []string{
		calendar.FormatDate(t.Date),
		string(t.Type),
		t.CategoryName,
		strconv.FormatFloat(t.Amount, 'f', 2, 64),
		t.Description,
	}
}

func (s *Server) handleExportTransactions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		badRequest(c, "Unsupported format, expected csv or xlsx")
		return
	}

	txs, err := s.transactions.List(c.Request.Context(), listInput(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s.%s", s.clock.Today().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "xlsx" {
		err = writeXLSX(c, txs)
	} else {
		err = writeCSV(c, txs)
	}
	if err != nil {
		logger.Error("export failed", zap.String("format", format), zap.Error(err))
	}
}

func writeCSV(c *gin.Context, txs []transaction.Transaction) error {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, t := range txs {
		if err := w.Write(exportRow(t)); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flush csv")
}

func writeXLSX(c *gin.Context, txs []transaction.Transaction) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("failed to close workbook", zap.Error(err))
		}
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		respondError(c, err)
		return errors.Wrap(err, "create sheet")
	}
	f.SetActiveSheet(index)

	header := make([]interface{}, 0, len(exportHeader))
	for _, h := range exportHeader {
		header = append(header, h)
	}
	if err = setRow(f, 1, header); err != nil {
		respondError(c, err)
		return err
	}
	for i, t := range txs {
		row := exportRow(t)
		cells := []interface{}{row[0], row[1], row[2], t.Amount, row[4]}
		if err = setRow(f, i+2, cells); err != nil {
			respondError(c, err)
			return err
		}
	}
	_ = f.SetColWidth(exportSheet, "A", "A", 12)
	_ = f.SetColWidth(exportSheet, "C", "C", 18)
	_ = f.SetColWidth(exportSheet, "E", "E", 40)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	return errors.Wrap(f.Write(c.Writer), "write workbook")
}

func setRow(f *excelize.File, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	return errors.Wrap(f.SetSheetRow(exportSheet, cell, &cells), "set row")
}
