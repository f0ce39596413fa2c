package mq

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"user-registry-api/internal/interface/api/rest/dto/user"
)

// RoutingKeys are the event actions; each one is bound to the events queue.
var RoutingKeys = []string{
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

type Event struct {
	Id      uuid.UUID `json:"event_id"`
	TS      time.Time `json:"time_stamp"`
	Method  string    `json:"event_action"`
	UserID  string    `json:"user_id"`
	Payload user.User `json:"user_payload"`
}

func NewEvent(method string, payload user.User) Event {
	return Event{
		Id:      uuid.New(),
		TS:      time.Now().UTC(),
		Method:  method,
		UserID:  payload.ID.String(),
		Payload: payload,
	}
}

// Discard drops every event; used when RabbitMQ is not configured.
type Discard struct{}

func (Discard) Publish(context.Context, Event) {}
