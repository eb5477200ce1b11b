package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// Create handles POST /users
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.Create(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User added", map[string]string{"worker_id": req.WorkerID})
}

// Delete handles DELETE /users/{id}
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	if err := h.userService.Delete(r.Context(), workerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User removed", nil)
}

// ListWorkers handles GET /users
func (h *userHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.userService.ListWorkers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}
