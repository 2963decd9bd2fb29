package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/middleware"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/response"
)

type LeaveHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetMyRecent(w http.ResponseWriter, r *http.Request)
	GetMyDashboard(w http.ResponseWriter, r *http.Request)
	GetMyApproved(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// Preview implements LeaveHandler.
func (l *LeaveHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req leave.PreviewLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	preview, err := l.leaveService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Owner always comes from the token
	actor := middleware.ActorFromContext(r.Context())
	created, err := l.leaveService.Submit(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.MyHistory(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// GetMyRecent implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			response.BadRequest(w, "limit must be a non-negative integer", map[string]string{"limit": s})
			return
		}
		limit = n
	}

	requests, err := l.leaveService.MyRecent(r.Context(), middleware.ActorFromContext(r.Context()), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// GetMyDashboard implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := l.leaveService.MyDashboard(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// GetMyApproved implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyApproved(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.MyApproved(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	ref := leave.Ref{
		OwnerID:   chi.URLParam(r, "ownerID"),
		RequestID: chi.URLParam(r, "requestID"),
	}

	request, err := l.leaveService.GetRequest(r.Context(), middleware.ActorFromContext(r.Context()), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponse(request))
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}
