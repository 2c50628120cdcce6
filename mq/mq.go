package mq

import (
	"context"
	"encoding/json"
	"log"

	"waymark/livemap"
	"waymark/models"
	"waymark/rdx"
)

const eventChannel = "map-events"

// Emit publishes an entity-change event to Redis. With Redis down the
// event is dropped; mutations never fail because of eventing.
func Emit(ctx context.Context, eventName string, content models.Index) {
	if rdx.Conn == nil {
		return
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartEventWorker forwards published entity events to the live map hub.
// Runs until the subscription breaks; intended for a goroutine.
func StartEventWorker(hub *livemap.Hub) {
	if rdx.Conn == nil {
		log.Println("[EventWorker] Redis unavailable, live map updates disabled")
		return
	}

	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventChannel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for map events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}
		hub.Broadcast([]byte(msg.Payload))
	}
}
