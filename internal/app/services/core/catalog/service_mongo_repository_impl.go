package catalog

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

type serviceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(client *mongo.Client, dbName string) contracts.ServiceRepository {
	return &serviceMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (r *serviceMongoRepository) FindActiveServices(ctx context.Context) ([]models.Service, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"active": true}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}

func (r *serviceMongoRepository) FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	service := new(models.Service)
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(service)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return service, nil
}

func (r *serviceMongoRepository) CreateService(ctx context.Context, service *models.Service) (string, error) {
	result, err := r.Collection.InsertOne(ctx, service)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return insertedID.Hex(), nil
}

func (r *serviceMongoRepository) UpdateService(ctx context.Context, serviceID string, service *models.Service) error {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":            service.Name,
		"description":     service.Description,
		"price":           service.Price,
		"durationMinutes": service.DurationMinutes,
		"category":        service.Category,
		"active":          service.Active,
		"imageUrl":        service.ImageURL,
		"updatedAt":       service.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *serviceMongoRepository) CountServices(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
