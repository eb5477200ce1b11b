package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	SalarySummary(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// SalarySummary handles GET /salary-summary
func (h *payrollHandlerImpl) SalarySummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payroll.SalarySummaryRequest{
		WorkerID: query.Get("worker_id"),
		Month:    query.Get("month"),
		Year:     query.Get("year"),
	}

	rows, err := h.payrollService.SalarySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Payroll handles GET /payroll
func (h *payrollHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Payroll(r.Context(), r.URL.Query().Get("worker_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Message != "" {
		response.SuccessWithMessage(w, result.Message, result)
		return
	}
	response.Success(w, result)
}
