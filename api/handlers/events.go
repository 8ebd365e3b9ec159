package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/models"
	"github.com/invitetrackhq/invite-tracker-api/tracker"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the socket is gateway-to-service, not browser-facing
	},
}

// EventHub tracks the connected sockets: the platform gateway pushing
// events in and any dashboards observing attribution outcomes
type EventHub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var hub = &EventHub{
	clients: make(map[*websocket.Conn]bool),
	mutex:   sync.Mutex{},
}

// Events exported for testing purposes
type Events struct {
	Tracker *tracker.Tracker
}

// HandleEventsWebSocket receives platform gateway events and feeds them
// to the tracker. Attribution outcomes are broadcast back to every
// connected client.
func (e Events) HandleEventsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	hub.mutex.Lock()
	hub.clients[conn] = true
	hub.mutex.Unlock()
	zap.S().Infow("client connected to /ws/events", "remote", r.RemoteAddr)

	defer func() {
		hub.mutex.Lock()
		delete(hub.clients, conn)
		hub.mutex.Unlock()
		conn.Close()
		zap.S().Infow("client disconnected from /ws/events", "remote", r.RemoteAddr)
	}()

	for {
		var event models.GatewayEvent
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.S().Warnw("event socket read failed", "error", err)
			}
			return
		}
		e.dispatch(r.Context(), event)
	}
}

func (e Events) dispatch(ctx context.Context, event models.GatewayEvent) {
	switch event.Kind {
	case models.EventMemberAdd:
		attribution, err := e.Tracker.ResolveArrival(ctx, event.SpaceID, event.UserID)
		if err != nil {
			zap.S().Errorw("failed to resolve arrival",
				"spaceId", event.SpaceID,
				"userId", event.UserID,
				"error", err,
			)
			return
		}
		broadcastEvent("attribution", map[string]interface{}{
			"spaceId":    event.SpaceID,
			"userId":     event.UserID,
			"attributed": attribution.Attributed,
			"code":       attribution.Code,
			"referrerId": attribution.ReferrerID,
		})
	case models.EventMemberRemove:
		if err := e.Tracker.RecordDeparture(ctx, event.SpaceID, event.UserID); err != nil {
			zap.S().Errorw("failed to record departure",
				"spaceId", event.SpaceID,
				"userId", event.UserID,
				"error", err,
			)
		}
	case models.EventInviteCreate:
		invite := models.Invite{Code: event.Code, CreatorID: event.CreatorID, Uses: event.Uses}
		if err := e.Tracker.RecordInviteCreated(ctx, event.SpaceID, invite); err != nil {
			zap.S().Errorw("failed to record invite creation",
				"spaceId", event.SpaceID,
				"code", event.Code,
				"error", err,
			)
		}
	case models.EventInviteDelete:
		if err := e.Tracker.RecordInviteDeleted(ctx, event.SpaceID, event.Code); err != nil {
			zap.S().Errorw("failed to record invite deletion",
				"spaceId", event.SpaceID,
				"code", event.Code,
				"error", err,
			)
		}
	default:
		zap.S().Warnw("unknown gateway event kind", "kind", event.Kind)
	}
}

// broadcastEvent sends an event to all connected clients
func broadcastEvent(eventType string, data map[string]interface{}) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn := range hub.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": eventType,
			"data":  data,
		})
		if err != nil {
			zap.S().Warnw("failed to broadcast event", "error", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
