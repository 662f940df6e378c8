package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Price           int                `bson:"price" json:"price"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Category        string             `bson:"category" json:"category"`
	Active          bool               `bson:"active" json:"active"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	TimeModel       `bson:",inline"`
}
