package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/metrics"
	"moneta/internal/models"
	"moneta/internal/repository"
	"moneta/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	metrics            *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, metrics: m}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,transaction_type"`
	Description string  `json:"description" binding:"max=500"`
	Date        *string `json:"date"`
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new income or expense transaction; the account balance is adjusted accordingly
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactionDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		transactionDate = parsed
	}

	transaction, err := h.transactionService.Create(
		req.Amount,
		models.TransactionType(req.Type),
		req.Description,
		transactionDate,
		req.AccountID,
		req.CategoryID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.metrics.IncrTransactionCreated(req.Type)

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetUserTransactions handles the filtered listing of the user's transactions
// @Summary     List transactions
// @Description List the authenticated user's transactions with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       month       query int    false "Filter by month (1-12)"
// @Param       year        query int    false "Filter by year"
// @Param       type        query string false "Filter by type (income, expense)"
// @Param       category_id query string false "Filter by category ID"
// @Param       account_id  query string false "Filter by account ID"
// @Success     200 {object} map[string]interface{} "Transactions and total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseTransactionFilter(c, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, total, err := h.transactionService.List(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "total": total})
}

func parseTransactionFilter(c *gin.Context, userID string) (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{UserID: userID}

	if v := c.Query("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, must be 1-12")
		}
		filter.Month = &month
	}

	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year < 1 {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year")
		}
		filter.Year = &year
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			filter.Type = &txType
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense")
		}
	}

	if v := c.Query("category_id"); v != "" {
		categoryID := v
		filter.CategoryID = &categoryID
	}

	if v := c.Query("account_id"); v != "" {
		accountID := v
		filter.AccountID = &accountID
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
