package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/pickleworks/backend/internal/application/identity"
	"github.com/pickleworks/backend/internal/domain/shopping"
	"github.com/pickleworks/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles account registration and session login
type AuthHandler struct {
	BaseHandler
	accounts *identityapp.AccountService
	sessions shopping.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *identityapp.AccountService, sessions shopping.SessionStore) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
	}
}

// RegisterRequest is the account registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse is the account view returned after register/login
type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Register creates a new shopper account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), identityapp.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, AccountResponse{
		ID:       account.ID.String(),
		Username: account.Username,
	})
}

// Login authenticates the shopper and binds the account to the session
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), identityapp.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.sessions.SetIdentity(c.Request.Context(), sessionID, account.Username); err != nil {
		h.InternalError(c, "Failed to update session")
		return
	}

	h.Success(c, AccountResponse{
		ID:       account.ID.String(),
		Username: account.Username,
	})
}

// Logout clears the whole session: identity and cart both go
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.sessions.Clear(c.Request.Context(), sessionID); err != nil {
		h.InternalError(c, "Failed to clear session")
		return
	}

	h.Success(c, gin.H{"message": "Logged out successfully"})
}

// Me returns the identity bound to the current session
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	session, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !session.IsAuthenticated() {
		h.Unauthorized(c, "Not logged in")
		return
	}

	h.Success(c, gin.H{"username": session.Identity})
}
