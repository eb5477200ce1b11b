package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/absentee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type AbsenteeHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
}

type absenteeHandlerImpl struct {
	absenteeService absentee.AbsenteeService
}

func NewAbsenteeHandler(absenteeService absentee.AbsenteeService) AbsenteeHandler {
	return &absenteeHandlerImpl{absenteeService: absenteeService}
}

// Scan handles POST /absentees/scan
func (h *absenteeHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req absentee.ScanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.absenteeService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
