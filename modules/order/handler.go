package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// jsonResponse is the standard intake response envelope.
type jsonResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// submitResponse is the payload for an accepted order.
type submitResponse struct {
	OrderID string `json:"orderId"`
	Grade   string `json:"performanceGrade"`
}

// Handle returns the HTTP handler for order intake.
//
//	r := chi.NewRouter()
//	r.Mount("/orders", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.submitOrder)
	return r
}

// Router mounts the order module at /orders.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Mount("/orders", svc.Handle())
	return r
}

func (s *Service) submitOrder(w http.ResponseWriter, r *http.Request) {
	var raw RawOrderRecord
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, jsonResponse{
			Code:    "bad_request",
			Message: "Request body must be a JSON order object.",
		})
		return
	}

	// Cheap fast-fail gate before the full pipeline; passing it is not a
	// verdict, the full pipeline still runs.
	if pre := PreValidate(&raw); !pre.CanProceed {
		writeJSON(w, http.StatusBadRequest, jsonResponse{
			Code:    "validation_failed",
			Message: UserMessage(pre.Critical),
		})
		return
	}

	id, rep, err := s.Submit(r.Context(), &raw)
	switch {
	case errors.Is(err, ErrDuplicateSubmission):
		writeJSON(w, http.StatusConflict, jsonResponse{
			Code:    "duplicate_submission",
			Message: "This order was already submitted. Please wait before trying again.",
		})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, jsonResponse{
			Code:    "internal_error",
			Message: "We could not process your order right now. Please try again later.",
		})
		return
	case !rep.Success:
		writeJSON(w, http.StatusUnprocessableEntity, jsonResponse{
			Code:    "validation_failed",
			Message: UserMessage(rep.Issues),
		})
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{
		Code: "order_accepted",
		Data: submitResponse{OrderID: id.String(), Grade: rep.Performance.Grade},
	})
}

func writeJSON(w http.ResponseWriter, status int, body jsonResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
