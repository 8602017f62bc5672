package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go-laundry-management/models"
	"go-laundry-management/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier pushes order events to connected dashboards. A nil notifier is
// allowed; events are then dropped.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

// SubmitItem is one line of a submit request. Prices are never taken from
// the caller; they are looked up in the catalog when the draft is rebuilt.
type SubmitItem struct {
	Category string `json:"category"`
	Service  string `json:"service"`
	Quantity int64  `json:"quantity"`
}

// OrderService owns the order lifecycle: submission of a draft, the
// forward-only status transitions driven by the administrator, and archival
// into the historyOrders collection.
type OrderService struct {
	orders   repositories.OrderRepository
	notifier Notifier
}

func NewOrderService(orders repositories.OrderRepository, notifier Notifier) *OrderService {
	return &OrderService{orders: orders, notifier: notifier}
}

// Submit validates the customer fields, rebuilds the draft against the
// catalog and persists a new order with status Waiting. Nothing is written
// when validation fails.
func (s *OrderService) Submit(ctx context.Context, customerName string, address string, phone string, userID string, items []SubmitItem) (string, error) {
	if customerName == "" || address == "" || phone == "" || len(items) == 0 {
		return "", ErrIncompleteOrder
	}

	draft := NewDraft()
	for _, item := range items {
		if err := draft.SetCategory(item.Category); err != nil {
			return "", err
		}
		if err := draft.SelectService(item.Service); err != nil {
			return "", err
		}
		if err := draft.AddItem(item.Quantity); err != nil {
			return "", err
		}
	}

	order := models.Order{
		ID:            primitive.NewObjectID(),
		Customer_name: customerName,
		Address:       address,
		Phone:         phone,
		User_id:       userID,
		Items:         draft.Items(),
		Total_amount:  draft.Total(),
		Status:        models.StatusWaiting,
		Created_at:    time.Now(),
	}
	order.Order_id = order.ID.Hex()

	if err := s.orders.Insert(ctx, order); err != nil {
		return "", err
	}
	s.notify("newOrder", order)
	return order.Order_id, nil
}

// Process moves an order from Waiting to Processing.
func (s *OrderService) Process(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, models.StatusWaiting, models.StatusProcessing)
}

// Complete moves an order from Processing to Completed.
func (s *OrderService) Complete(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, models.StatusProcessing, models.StatusCompleted)
}

func (s *OrderService) transition(ctx context.Context, orderID string, from string, to string) error {
	matched, err := s.orders.UpdateStatus(ctx, orderID, from, to)
	if err != nil {
		return err
	}
	if !matched {
		// The conditional write missed: either the order does not exist or
		// it is not in the expected status.
		if _, err := s.orders.FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repositories.ErrNoDocument) {
				return ErrOrderNotFound
			}
			return err
		}
		return ErrInvalidTransition
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err == nil {
		s.notify("statusChanged", order)
	}
	return nil
}

// Clear archives a Completed order: the full record plus a cleared_at
// timestamp is copied into historyOrders, then the live copy is deleted.
// A failed delete after a successful copy leaves a duplicate record; that
// condition is reported as ErrPartialArchival, never swallowed.
func (s *OrderService) Clear(ctx context.Context, orderID string) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNoDocument) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.Status != models.StatusCompleted {
		return ErrInvalidTransition
	}

	archived := models.ArchivedOrder{Order: order, Cleared_at: time.Now()}
	if err := s.orders.InsertHistory(ctx, archived); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		log.Printf("order %s archived but live copy not deleted, duplicate record: %v", orderID, err)
		return ErrPartialArchival
	}
	s.notify("orderCleared", archived)
	return nil
}

// ListAll returns every live order.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

// ListByOwner returns the live orders belonging to one user.
func (s *OrderService) ListByOwner(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// History returns every archived order.
func (s *OrderService) History(ctx context.Context) ([]models.ArchivedOrder, error) {
	return s.orders.FindAllHistory(ctx)
}

// HistoryByOwner returns the archived orders belonging to one user.
func (s *OrderService) HistoryByOwner(ctx context.Context, userID string) ([]models.ArchivedOrder, error) {
	return s.orders.FindHistoryByUser(ctx, userID)
}

func (s *OrderService) notify(event string, payload interface{}) {
	if s.notifier != nil {
		s.notifier.Broadcast(event, payload)
	}
}
