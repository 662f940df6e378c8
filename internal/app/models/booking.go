package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	BookingStatusConfirmed = "confirmed"
)

type BookingItem struct {
	ServiceID       string `bson:"serviceId" json:"serviceId"`
	ServiceName     string `bson:"serviceName" json:"serviceName"`
	Price           int    `bson:"price" json:"price"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
	Category        string `bson:"category" json:"category"`
}

// Booking stores the start both as the display label and as minutes since
// midnight. The minutes value is what availability computation reads.
type Booking struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               string             `bson:"userId" json:"userId"`
	ContactName          string             `bson:"contactName" json:"contactName"`
	ContactPhone         string             `bson:"contactPhone" json:"contactPhone"`
	Date                 string             `bson:"date" json:"date"`
	StartTime            string             `bson:"startTime" json:"startTime"`
	StartMinutes         int                `bson:"startMinutes" json:"startMinutes"`
	TotalPrice           int                `bson:"totalPrice" json:"totalPrice"`
	TotalDurationMinutes int                `bson:"totalDurationMinutes" json:"totalDurationMinutes"`
	Status               string             `bson:"status" json:"status"`
	Items                []BookingItem      `bson:"items" json:"items"`
	TimeModel            `bson:",inline"`
}

// EndMinutes is the exclusive end of the booked interval.
func (b *Booking) EndMinutes() int {
	return b.StartMinutes + b.TotalDurationMinutes
}
