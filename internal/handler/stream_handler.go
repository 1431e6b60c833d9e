package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/akshay543210/propfirm143/pkg/broker"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// StreamHandler exposes the store change-notification feeds over SSE.
// Clients re-fetch their lists when an event arrives.
type StreamHandler struct {
	broker *broker.Broker
}

func NewStreamHandler(eventBroker *broker.Broker) *StreamHandler {
	return &StreamHandler{broker: eventBroker}
}

// TrackerStream handles GET /api/drama/stream — the public drama tracker
// feed. Only changes affecting the approved set are published here.
func (h *StreamHandler) TrackerStream(e *pbCore.RequestEvent) error {
	return h.stream(e, broker.ChannelTracker, "", "tracker")
}

// AdminStream handles GET /api/admin/stream — every moderation event.
func (h *StreamHandler) AdminStream(e *pbCore.RequestEvent) error {
	return h.stream(e, broker.ChannelAdmin, "", "admin")
}

// SubmitterStream handles GET /api/drama/mine/stream — changes to the
// authenticated user's own reports.
func (h *StreamHandler) SubmitterStream(e *pbCore.RequestEvent) error {
	return h.stream(e, broker.ChannelSubmitter, e.Auth.Id, "submitter")
}

func (h *StreamHandler) stream(e *pbCore.RequestEvent, channel broker.Channel, id, role string) error {
	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	flusher, ok := e.Response.(http.Flusher)
	if !ok {
		return e.String(500, "Streaming unsupported")
	}

	eventChan := h.broker.Subscribe(channel, id)
	defer h.broker.Unsubscribe(channel, id, eventChan)

	initial := broker.Event{
		Type:      "connection.established",
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"role": role,
		},
	}
	if payload, err := json.Marshal(initial); err == nil {
		fmt.Fprintf(e.Response, "data: %s\n\n", payload)
		flusher.Flush()
	}

	for {
		select {
		case event := <-eventChan:
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(e.Response, "data: %s\n\n", payload)
			flusher.Flush()

		case <-e.Request.Context().Done():
			// Client disconnected
			return nil
		}
	}
}
