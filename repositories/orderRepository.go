package repositories

import (
	"context"
	"fmt"

	"go-laundry-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocument is returned by lookups when no record matches. The service
// layer translates it into its own not-found error.
var ErrNoDocument = mongo.ErrNoDocuments

// OrderRepository covers the two order collections: live orders and
// historyOrders. Read results carry no ordering guarantee.
type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) error
	FindByID(ctx context.Context, orderID string) (models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	// UpdateStatus transitions an order from one status to another in a
	// single conditional write; it reports false when no live order matched
	// both the id and the expected current status.
	UpdateStatus(ctx context.Context, orderID string, from string, to string) (bool, error)
	Delete(ctx context.Context, orderID string) error
	InsertHistory(ctx context.Context, archived models.ArchivedOrder) error
	FindAllHistory(ctx context.Context) ([]models.ArchivedOrder, error)
	FindHistoryByUser(ctx context.Context, userID string) ([]models.ArchivedOrder, error)
}

type mongoOrderRepository struct {
	orders  *mongo.Collection
	history *mongo.Collection
}

func NewMongoOrderRepository(orders *mongo.Collection, history *mongo.Collection) OrderRepository {
	return &mongoOrderRepository{orders: orders, history: history}
}

func (r *mongoOrderRepository) Insert(ctx context.Context, order models.Order) error {
	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *mongoOrderRepository) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := r.orders.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *mongoOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.findOrders(ctx, bson.M{})
}

func (r *mongoOrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.findOrders(ctx, bson.M{"user_id": userID})
}

func (r *mongoOrderRepository) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.orders.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepository) UpdateStatus(ctx context.Context, orderID string, from string, to string) (bool, error) {
	// Filtering on the current status makes the transition conditional, so
	// two admins racing on the same order cannot both win.
	filter := bson.M{"order_id": orderID, "status": from}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: to}}}}

	result, err := r.orders.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoOrderRepository) Delete(ctx context.Context, orderID string) error {
	result, err := r.orders.DeleteOne(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *mongoOrderRepository) InsertHistory(ctx context.Context, archived models.ArchivedOrder) error {
	if _, err := r.history.InsertOne(ctx, archived); err != nil {
		return fmt.Errorf("insert history order: %w", err)
	}
	return nil
}

func (r *mongoOrderRepository) FindAllHistory(ctx context.Context) ([]models.ArchivedOrder, error) {
	return r.findHistory(ctx, bson.M{})
}

func (r *mongoOrderRepository) FindHistoryByUser(ctx context.Context, userID string) ([]models.ArchivedOrder, error) {
	return r.findHistory(ctx, bson.M{"user_id": userID})
}

func (r *mongoOrderRepository) findHistory(ctx context.Context, filter bson.M) ([]models.ArchivedOrder, error) {
	cursor, err := r.history.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find history orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.ArchivedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode history orders: %w", err)
	}
	return orders, nil
}
