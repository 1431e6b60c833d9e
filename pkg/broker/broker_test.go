package broker

import (
	"testing"
	"time"
)

func TestBroker_AdminChannel(t *testing.T) {
	broker := New()

	// Subscribe admin clients
	client1 := broker.Subscribe(ChannelAdmin, "")
	client2 := broker.Subscribe(ChannelAdmin, "")

	// Publish event
	event := Event{
		Type:      "drama.created",
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"report_id": "123",
		},
	}

	go broker.Publish(ChannelAdmin, "", event)

	// Both clients should receive
	select {
	case e := <-client1:
		if e.Type != "drama.created" {
			t.Errorf("Expected drama.created, got %s", e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Client 1 timeout")
	}

	select {
	case e := <-client2:
		if e.Type != "drama.created" {
			t.Errorf("Expected drama.created, got %s", e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Client 2 timeout")
	}
}

func TestBroker_SubmitterChannel_Isolation(t *testing.T) {
	broker := New()

	// Subscribe two different submitters
	userA := broker.Subscribe(ChannelSubmitter, "user_a")
	userB := broker.Subscribe(ChannelSubmitter, "user_b")

	// Publish to user A only
	event := Event{
		Type:      "drama.status_changed",
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"report_id": "456",
			"status":    "Approved",
		},
	}

	go broker.Publish(ChannelSubmitter, "user_a", event)

	// User A should receive
	select {
	case e := <-userA:
		if e.Type != "drama.status_changed" {
			t.Errorf("Expected drama.status_changed, got %s", e.Type)
		}
	case <-time.After(time.Second):
		t.Error("User A timeout")
	}

	// User B should NOT receive
	select {
	case <-userB:
		t.Error("User B should not receive event meant for User A")
	case <-time.After(100 * time.Millisecond):
		// Expected: timeout means no event received
	}
}

func TestBroker_TrackerChannel_Broadcast(t *testing.T) {
	broker := New()

	tracker := broker.Subscribe(ChannelTracker, "")
	admin := broker.Subscribe(ChannelAdmin, "")

	event := Event{
		Type:      "drama.approved",
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"report_id": "789",
		},
	}

	go broker.Publish(ChannelTracker, "", event)

	// Tracker subscriber should receive
	select {
	case e := <-tracker:
		if e.Type != "drama.approved" {
			t.Errorf("Expected drama.approved, got %s", e.Type)
		}
	case <-time.After(time.Second):
		t.Error("Tracker timeout")
	}

	// Admin channel is separate; nothing should arrive there
	select {
	case <-admin:
		t.Error("Admin should not receive tracker-channel events")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroker_Unsubscribe(t *testing.T) {
	broker := New()

	client := broker.Subscribe(ChannelAdmin, "")

	stats := broker.Stats()
	if stats["admin_clients"] != 1 {
		t.Errorf("Expected 1 admin client, got %d", stats["admin_clients"])
	}

	broker.Unsubscribe(ChannelAdmin, "", client)

	stats = broker.Stats()
	if stats["admin_clients"] != 0 {
		t.Errorf("Expected 0 admin clients after unsubscribe, got %d", stats["admin_clients"])
	}

	// Channel should be closed
	if _, open := <-client; open {
		t.Error("Channel should be closed after unsubscribe")
	}
}

func TestBroker_SubmitterCleanup(t *testing.T) {
	broker := New()

	client := broker.Subscribe(ChannelSubmitter, "user_a")
	broker.Unsubscribe(ChannelSubmitter, "user_a", client)

	stats := broker.Stats()
	if stats["submitter_clients"] != 0 {
		t.Errorf("Expected 0 submitter clients, got %d", stats["submitter_clients"])
	}

	// Publishing to a drained submitter id must not panic
	broker.Publish(ChannelSubmitter, "user_a", Event{Type: "noop"})
}

func TestBroker_SlowClientDoesNotBlock(t *testing.T) {
	broker := New()

	// Fill a client's buffer without draining it
	client := broker.Subscribe(ChannelTracker, "")
	for i := 0; i < 15; i++ {
		broker.Publish(ChannelTracker, "", Event{Type: "drama.updated"})
	}

	// Publish must have returned; the extra events were dropped
	if len(client) != cap(client) {
		t.Errorf("Expected full buffer of %d, got %d", cap(client), len(client))
	}
}
