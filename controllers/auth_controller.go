package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dhruvmish/Airline-Assistant/config"
	"github.com/dhruvmish/Airline-Assistant/services"
)

type AuthController struct {
	userService *services.UserService
}

func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Signup creates a new account.
func (ac *AuthController) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := ac.userService.CreateUser(c.Request.Context(), username, password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User created"})
}

// Login verifies credentials and sets the JWT access cookie.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := ac.userService.Authenticate(c.Request.Context(), username, password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	cfg := config.Get()
	expiry := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	// HttpOnly cookie; mark Secure when serving over HTTPS.
	c.SetCookie(cfg.JWT.CookieName, signed, int(expiry.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

// Logout clears the access cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	cfg := config.Get()
	c.SetCookie(cfg.JWT.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
