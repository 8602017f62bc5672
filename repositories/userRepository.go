package repositories

import (
	"context"
	"fmt"
	"time"

	"go-laundry-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository is the profile mirror in the users collection. Profiles are
// created at registration and never deleted; the only mutation is the token
// refresh on login.
type UserRepository interface {
	Insert(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID string) (models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	UpdateTokens(ctx context.Context, userID string, token string, refreshToken string) error
}

type mongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(users *mongo.Collection) UserRepository {
	return &mongoUserRepository{users: users}
}

func (r *mongoUserRepository) Insert(ctx context.Context, user models.User) error {
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *mongoUserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("count users by email: %w", err)
	}
	return count, nil
}

func (r *mongoUserRepository) UpdateTokens(ctx context.Context, userID string, token string, refreshToken string) error {
	var updateObj bson.D
	updateObj = append(updateObj, bson.E{Key: "token", Value: token})
	updateObj = append(updateObj, bson.E{Key: "refresh_token", Value: refreshToken})
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	_, err := r.users.UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		bson.D{{Key: "$set", Value: updateObj}},
		options.Update().SetUpsert(false),
	)
	if err != nil {
		return fmt.Errorf("update user tokens: %w", err)
	}
	return nil
}
