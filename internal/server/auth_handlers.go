package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafisnihal/product-management-backend/internal/auth"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Description Authenticate with email and password, receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required",
		})
		return
	}

	identity, err := s.verifier.Verify(auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Email and password are required",
			})
		case errors.Is(err, auth.ErrInvalidCredentials):
			s.logger.Warn().Str("email", req.Email).Msg("Login failed: invalid credentials")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials",
			})
		default:
			s.logger.Error().Err(err).Msg("Login failed: verifier error")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
		}
		return
	}

	token, err := s.codec.Encode(identity)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate session token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	s.transport.Attach(c.Writer, token)

	s.logger.Info().Str("user_id", identity.ID).Str("email", identity.Email).Msg("User logged in")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    identity,
	})
}

// @Summary Logout
// @Description Clear the session cookie. Works whether or not a valid session exists.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	s.transport.Clear(c.Writer)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

// @Summary Verify session
// @Description Return the identity of the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/verify [get]
func (s *Server) verifyAuth(c *gin.Context) {
	identity, ok := GetSession(c)
	if !ok {
		// Routing wires the auth middleware ahead of this handler, so a
		// missing session here is a contract violation, not an anonymous
		// visitor.
		s.logger.Error().Str("path", c.Request.URL.Path).Msg("Verify reached without session in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    identity,
	})
}
