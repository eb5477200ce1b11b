package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	userService user.UserService
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq user.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := a.userService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "worker_id", loginReq.WorkerID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Login successful", "worker_id", result.WorkerID, "role", result.Role)
	response.SuccessWithMessage(w, "Login successful", result)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	response.Success(w, map[string]string{
		"worker_id": claims.WorkerID,
		"role":      claims.Role,
	})
}

func NewAuthHandler(userService user.UserService) AuthHandler {
	return &AuthHandlerImpl{
		userService: userService,
	}
}
