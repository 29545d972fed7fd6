package http

import (
	"net/http"
	"time"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/jwt"
	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

type registerRequestBody struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=buyer seller"`
}

type authRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequestBody struct {
	Username *string `json:"username" binding:"omitempty,min=4,max=20"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=buyer seller"`
}

type depositRequestBody struct {
	Deposit uint32 `json:"deposit" binding:"required,oneof=5 10 20 50 100"`
}

type CookieSettings struct {
	Secure bool
	MaxAge time.Duration
}

type UsersHandler struct {
	accounts domain.AccountService
	deposits domain.DepositService
	cookie   CookieSettings
	logger   logging.Logger
}

func NewUsersHandler(accounts domain.AccountService, deposits domain.DepositService, cookie CookieSettings, logger logging.Logger) *UsersHandler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = jwt.DefaultTokenTTL
	}

	return &UsersHandler{
		accounts: accounts,
		deposits: deposits,
		cookie:   cookie,
		logger:   logger,
	}
}

func (h *UsersHandler) Register(c *gin.Context) {
	var body registerRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), body.Username, body.Password, domain.Role(body.Role))
	if err != nil {
		writeError(c, h.logger, "register", err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *UsersHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.accounts.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		writeError(c, h.logger, "authenticate", err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(jwt.TokenCookieName, token, int(h.cookie.MaxAge.Seconds()), "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *UsersHandler) Logout(c *gin.Context) {
	if claims, ok := c.Get(claimsKey); ok {
		tokenClaims := claims.(*jwt.Claims)

		var expiresAt time.Time
		if tokenClaims.ExpiresAt != nil {
			expiresAt = tokenClaims.ExpiresAt.Time
		}

		if err := h.accounts.Logout(c.Request.Context(), tokenClaims.ID, expiresAt); err != nil {
			writeError(c, h.logger, "logout", err)
			return
		}
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(jwt.TokenCookieName, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UsersHandler) Me(c *gin.Context) {
	user, err := h.accounts.GetUser(c.Request.Context(), callerID(c))
	if err != nil {
		writeError(c, h.logger, "get user", err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.accounts.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "list users", err)
		return
	}

	response := make([]userResponse, 0, len(users))
	for _, user := range users {
		response = append(response, newUserResponse(user))
	}

	c.JSON(http.StatusOK, response)
}

func (h *UsersHandler) Update(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	var body updateUserRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	patch := domain.UserPatch{
		Username: body.Username,
		Password: body.Password,
	}

	if body.Role != nil {
		role := domain.Role(*body.Role)
		patch.Role = &role
	}

	user, err := h.accounts.UpdateUser(c.Request.Context(), callerID(c), userID, patch)
	if err != nil {
		writeError(c, h.logger, "update user", err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UsersHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	err := h.accounts.DeleteUser(c.Request.Context(), callerID(c), userID)
	if err != nil {
		writeError(c, h.logger, "delete user", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UsersHandler) Deposit(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	var body depositRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "deposit must be one of 5, 10, 20, 50, 100"})
		return
	}

	balance, err := h.deposits.Deposit(c.Request.Context(), callerID(c), userID, body.Deposit)
	if err != nil {
		writeError(c, h.logger, "deposit", err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{Deposit: balance})
}

func (h *UsersHandler) Reset(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	balance, err := h.deposits.Reset(c.Request.Context(), callerID(c), userID)
	if err != nil {
		writeError(c, h.logger, "reset deposit", err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{Deposit: balance})
}
