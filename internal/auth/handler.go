package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
)

// Credentials is the admin account checked at login.
type Credentials struct {
	Username string
	Password string
}

// CookieOptions controls the session cookie set at login.
type CookieOptions struct {
	Name   string
	Secure bool
}

// Handler serves the login, logout and session endpoints.
type Handler struct {
	creds   Credentials
	cookie  CookieOptions
	manager *JWTManager
	log     infralogger.Logger
}

func NewHandler(creds Credentials, cookie CookieOptions, manager *JWTManager, log infralogger.Logger) *Handler {
	return &Handler{
		creds:   creds,
		cookie:  cookie,
		manager: manager,
		log:     log,
	}
}

type LoginRequest struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.validCredentials(req.Username, req.Password) {
		h.log.Warn("Admin login failed",
			infralogger.String("username", req.Username),
			infralogger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expiresAt, err := h.manager.GenerateToken(req.Username)
	if err != nil {
		h.log.Error("Failed to generate session token", infralogger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	if h.cookie.Name != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie.Name, token, int(h.manager.Expiration().Seconds()), "/", "", h.cookie.Secure, true)
	}

	h.log.Info("Admin logged in", infralogger.String("username", req.Username))
	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// validCredentials compares both fields in constant time.
func (h *Handler) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.creds.Password)) == 1
	return userOK && passOK
}

// Logout clears the session cookie. Bearer tokens stay valid until expiry.
func (h *Handler) Logout(c *gin.Context) {
	if h.cookie.Name != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Session reports the authenticated admin. It must run behind Middleware.
func (h *Handler) Session(c *gin.Context) {
	claims, ok := GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, SessionResponse{Username: claims.Sub, ExpiresAt: expiresAt})
}
