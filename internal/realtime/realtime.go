// Package realtime routes order, report and notification events to
// audience-scoped rooms. Delivery is best-effort: publishing happens after
// the triggering transaction commits, failures are logged by callers and
// never fail the business operation, and every consumer has a polling
// fallback over the HTTP API.
package realtime

import (
	"context"
	"fmt"

	"github.com/campuseats/campuseats/internal/models"
)

// event names pushed to connected clients
const (
	EventOrderNew          = "order:new"
	EventOrderStatusChange = "order:statusChanged"
	EventNotificationNew   = "notification:new"
)

// Room is audience channel key
type Room string

// StudentRoom returns private per-student room
func StudentRoom(studentID uint64) Room {
	return Room(fmt.Sprintf("student:%d", studentID))
}

// RestaurantRoom returns shared per-restaurant room
func RestaurantRoom(restaurantID uint64) Room {
	return Room(fmt.Sprintf("restaurant:%d", restaurantID))
}

// AdminsRoom is the super-admin broadcast room
const AdminsRoom = Room("admins")

// RoomForRole returns the room matching a notification recipient role
func RoomForRole(recipientID uint64, role string) Room {
	switch role {
	case models.RoleStudent:
		return StudentRoom(recipientID)
	case models.RoleRestaurant:
		return RestaurantRoom(recipientID)
	default:
		return AdminsRoom
	}
}

// Event is single realtime event
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// Publisher delivers events to a room. Implementations must never block on
// slow consumers.
type Publisher interface {
	Publish(ctx context.Context, room Room, event Event) error
}
