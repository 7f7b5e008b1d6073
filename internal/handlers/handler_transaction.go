package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	cache              *readCache
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, rc *readCache) {
	h := &transactionHandler{transactionService: transactionService, cache: rc}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/export", h.exportTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err)
		return
	}

	token := ""
	if params.NextToken != nil {
		token = *params.NextToken
	}
	key := cacheKey("transactions", userID, params.Limit, token)
	if cached, found := h.cache.get(key); found {
		c.JSON(http.StatusOK, cached)
		return
	}
	gen := h.cache.generation()

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}

	res := dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}
	h.cache.set(key, res, gen)
	logger.Debug("Transactions listed", slog.Int("count", len(res.Transactions)), slog.Bool("has_more", nextToken != nil))
	c.JSON(http.StatusOK, res)
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(c, logger, apperrors.NewValidationError("invalid date", err), "create transaction")
		return
	}

	id, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, logger, err, "create transaction")
		return
	}
	h.cache.invalidate()

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, logger, err, "retrieve transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", id))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondError(c, logger, apperrors.NewValidationError("invalid date", err), "update transaction")
		return
	}

	if err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, patch); err != nil {
		respondError(c, logger, err, "update transaction")
		return
	}
	h.cache.invalidate()

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondError(c, logger, err, "retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "delete transaction")
		return
	}
	h.cache.invalidate()
	c.Status(http.StatusNoContent)
}
