package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/middleware"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/response"
)

type ReviewHandler interface {
	ListQueue(w http.ResponseWriter, r *http.Request)
	TeacherDecision(w http.ResponseWriter, r *http.Request)
	FinalDecision(w http.ResponseWriter, r *http.Request)
}

type ReviewHandlerImpl struct {
	leaveService leave.LeaveService
}

// ListQueue implements ReviewHandler.
func (h *ReviewHandlerImpl) ListQueue(w http.ResponseWriter, r *http.Request) {
	filter := leave.ReviewFilter{
		TeacherStatus: r.URL.Query().Get("teacher_status"),
		FinalStatus:   r.URL.Query().Get("final_status"),
	}

	queue, err := h.leaveService.ReviewQueue(r.Context(), middleware.ActorFromContext(r.Context()), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, queue)
}

// TeacherDecision implements ReviewHandler.
func (h *ReviewHandlerImpl) TeacherDecision(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDecision(w, r, "TeacherDecision")
	if !ok {
		return
	}

	updated, err := h.leaveService.TeacherDecide(r.Context(), middleware.ActorFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher decision recorded", leave.NewLeaveRequestResponse(updated))
}

// FinalDecision implements ReviewHandler.
func (h *ReviewHandlerImpl) FinalDecision(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDecision(w, r, "FinalDecision")
	if !ok {
		return
	}

	updated, err := h.leaveService.HODDecide(r.Context(), middleware.ActorFromContext(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Final decision recorded", leave.NewLeaveRequestResponse(updated))
}

func decodeDecision(w http.ResponseWriter, r *http.Request, op string) (leave.DecisionRequest, bool) {
	var req leave.DecisionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	req.OwnerID = chi.URLParam(r, "ownerID")
	req.RequestID = chi.URLParam(r, "requestID")

	return req, true
}

func NewReviewHandler(leaveService leave.LeaveService) ReviewHandler {
	return &ReviewHandlerImpl{
		leaveService: leaveService,
	}
}
