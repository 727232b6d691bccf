package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/transactions"
)

type transactionJSON struct {
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	CategoryName string  `json:"category_name"`
	CategoryID   int64   `json:"category_id"`
}

func toTransactionJSON(t transaction.Transaction) transactionJSON {
	return transactionJSON{
		ID:           t.ID,
		Amount:       t.Amount,
		Date:         calendar.FormatDate(t.Date),
		Description:  t.Description,
		Type:         string(t.Type),
		CategoryName: t.CategoryName,
		CategoryID:   t.CategoryID,
	}
}

type createTransactionRequest struct {
	Amount      flexString `json:"amount"`
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	CategoryID  flexString `json:"category_id"`
}

func listInput(c *gin.Context) transactions.ListInput {
	return transactions.ListInput{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Type:      c.Query("type"),
	}
}

func (s *Server) handleListTransactions(c *gin.Context) {
	txs, err := s.transactions.List(c.Request.Context(), listInput(c))
	if err != nil {
		respondError(c, err)
		return
	}
	res := make([]transactionJSON, 0, len(txs))
	for _, t := range txs {
		res = append(res, toTransactionJSON(t))
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON")
		return
	}

	t, err := s.transactions.Create(c.Request.Context(), transactions.Input{
		Amount:      req.Amount.String(),
		Date:        req.Date,
		Description: req.Description,
		Type:        req.Type,
		CategoryID:  req.CategoryID.String(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTransactionJSON(t))
}

func (s *Server) handleDeleteTransaction(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := s.transactions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deletedResponse)
}
