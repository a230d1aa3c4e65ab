package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, h.logger, "create user", err)
		return
	}

	view, err := h.userUseCase.CreateUser(c.Request.Context(), req.Email, req.Pin)
	if err != nil {
		respondError(c, h.logger, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(view))
}

// GetUser handles the GET /users/:userId endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	h.getUser(c, c.Param("userId"))
}

// GetUserByQuery handles the GET /users?user_id= endpoint
func (h *UserHandler) GetUserByQuery(c *gin.Context) {
	var q dto.UserIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, h.logger, "get user", err)
		return
	}
	h.getUser(c, q.UserID)
}

func (h *UserHandler) getUser(c *gin.Context, rawID string) {
	userID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || userID == 0 {
		respondError(c, h.logger, "get user", domainerr.ErrInvalidUserID)
		return
	}

	view, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get user", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(view))
}

// GetBalance handles the GET /users/current-balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	var q dto.CredentialsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, h.logger, "get balance", err)
		return
	}

	balance, err := h.userUseCase.GetBalance(c.Request.Context(), q.Email, q.Pin)
	if err != nil {
		respondError(c, h.logger, "get balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}
