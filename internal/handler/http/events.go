package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/leavedesk/leave-approval-backend/internal/domain/auth"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/middleware"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/response"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/jwt"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

type connectedFrame struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
}

// Subscriber is the read side of the event hub.
type Subscriber interface {
	Subscribe(userID string) (<-chan sse.Event, func())
}

type EventHandler interface {
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
	hub         Subscriber
	keepalive   time.Duration
}

// GetSSEToken generates a short-lived token for SSE connections
func (h *eventHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authService.IssueSSEToken(r.Context(), middleware.ActorFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Stream handles SSE connection for leave status events
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	connected, _ := json.Marshal(connectedFrame{Status: "connected", UserID: userID})
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", connected)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func NewEventHandler(authService auth.AuthService, jwtService jwt.Service, hub Subscriber) EventHandler {
	return &eventHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
		hub:         hub,
		keepalive:   keepaliveInterval,
	}
}
