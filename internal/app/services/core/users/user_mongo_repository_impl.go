package users

import (
	"context"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(client *mongo.Client, dbName string) contracts.UserRepository {
	return &userMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *userMongoRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	user := new(models.User)
	err := r.Collection.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return user, nil
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	result, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return insertedID.Hex(), nil
}
