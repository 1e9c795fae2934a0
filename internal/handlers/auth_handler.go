package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"evermore/internal/config"
	"evermore/internal/middleware"
	"evermore/internal/models"
)

type AuthHandler struct {
	staff []config.StaffAccount
}

func NewAuthHandler(staff []config.StaffAccount) *AuthHandler {
	return &AuthHandler{staff: staff}
}

// @Summary      Log in
// @Description  Authenticates a staff member and returns an access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)

	var account *config.StaffAccount
	for i := range h.staff {
		if strings.EqualFold(h.staff[i].Email, email) {
			account = &h.staff[i]
			break
		}
	}
	if account == nil || strings.TrimSpace(account.PasswordHash) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(strings.TrimSpace(account.PasswordHash)),
		[]byte(strings.TrimSpace(req.Password)),
	); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	claims := &middleware.Claims{
		UserID: account.ID,
		RoleID: account.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(middleware.SigningKey())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"user": gin.H{
			"id":      account.ID,
			"name":    account.Name,
			"email":   account.Email,
			"role_id": account.RoleID,
		},
	})
}
