package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/caterops/staffdesk/internal/apperrors"
	portssvc "github.com/caterops/staffdesk/internal/core/ports/services"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/middleware"
	"github.com/caterops/staffdesk/internal/platform/config"
)

// authHandler handles the public authentication endpoint.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public login route with a per-IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	r.POST("/api/login", middleware.RateLimit(ipLimiter), h.login)
}

// login verifies credentials and returns a signed token plus the user record.
// Failures use the {"message": ...} body shape the dashboard reads.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email and password are required"})
		return
	}

	user, token, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Login rejected", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Login failed"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}
