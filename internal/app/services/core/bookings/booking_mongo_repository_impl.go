package bookings

import (
	"context"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(client *mongo.Client, dbName string) contracts.BookingRepository {
	return &bookingMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *bookingMongoRepository) FindConfirmedBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	filter := bson.M{
		"date":   date,
		"status": models.BookingStatusConfirmed,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "startMinutes", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) FindBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "startMinutes", Value: -1},
	})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return insertedID.Hex(), nil
}

// DeleteBookingByIDAndUserID is idempotent: deleting a booking that does not
// exist, or that was already deleted, succeeds.
func (r *bookingMongoRepository) DeleteBookingByIDAndUserID(ctx context.Context, bookingID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		// A malformed id can never reference an existing booking.
		return nil
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
