package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// PostTransaction handles the POST /transactions endpoint
func (h *TransactionHandler) PostTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, h.logger, "post transaction", err)
		return
	}

	view, err := h.transactionUseCase.PostTransaction(c.Request.Context(), usecase.TransactionRequest{
		Email:  req.Email,
		Pin:    req.Pin,
		Amount: *req.Amount,
		TxType: req.TxType,
	})
	if err != nil {
		respondError(c, h.logger, "post transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(view))
}

// ListTransactions handles the GET /transactions endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q dto.CredentialsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, h.logger, "list transactions", err)
		return
	}

	views, err := h.transactionUseCase.ListTransactions(c.Request.Context(), q.Email, q.Pin)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(views))
}
