package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/redis/go-redis/v9"
)

// Fixed per-session field keys. The in-progress cart and schedule must
// survive a page reload mid-wizard, so every field lives under its own
// JSON-serialized key and the whole set is dropped after a successful
// submission.
const (
	fieldCart         = "cart"
	fieldPickupDate   = "pickupDate"
	fieldDeliveryDate = "deliveryDate"
	fieldPickupSlot   = "pickupTimeSlot"
	fieldDeliverySlot = "deliveryTimeSlot"
	fieldReceiptPath  = "receiptPath"
)

type SessionStore interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error
	GetSchedule(ctx context.Context, sessionID string) (*models.ScheduleSelection, error)
	SaveSchedule(ctx context.Context, sessionID string, schedule *models.ScheduleSelection) error
	GetReceiptPath(ctx context.Context, sessionID string) (string, error)
	SaveReceiptPath(ctx context.Context, sessionID, path string) error
	Clear(ctx context.Context, sessionID string) error
}

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &sessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID, field string) string {
	return fmt.Sprintf("checkout:%s:%s", sessionID, field)
}

// getJSON returns false without error when the key is absent.
func (s *sessionStore) getJSON(ctx context.Context, key string, value any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal session data for key %s: %w", key, err)
	}

	return true, nil
}

func (s *sessionStore) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (s *sessionStore) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart := &models.Cart{}

	if _, err := s.getJSON(ctx, sessionKey(sessionID, fieldCart), cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *sessionStore) SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	return s.setJSON(ctx, sessionKey(sessionID, fieldCart), cart)
}

func (s *sessionStore) GetSchedule(ctx context.Context, sessionID string) (*models.ScheduleSelection, error) {
	schedule := &models.ScheduleSelection{}

	if _, err := s.getJSON(ctx, sessionKey(sessionID, fieldPickupDate), &schedule.PickupDate); err != nil {
		return nil, err
	}

	if _, err := s.getJSON(ctx, sessionKey(sessionID, fieldDeliveryDate), &schedule.DeliveryDate); err != nil {
		return nil, err
	}

	if _, err := s.getJSON(ctx, sessionKey(sessionID, fieldPickupSlot), &schedule.PickupTimeSlot); err != nil {
		return nil, err
	}

	if _, err := s.getJSON(ctx, sessionKey(sessionID, fieldDeliverySlot), &schedule.DeliveryTimeSlot); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *sessionStore) SaveSchedule(ctx context.Context, sessionID string, schedule *models.ScheduleSelection) error {
	fields := []struct {
		field string
		value any
		unset bool
	}{
		{fieldPickupDate, schedule.PickupDate, schedule.PickupDate == nil},
		{fieldDeliveryDate, schedule.DeliveryDate, schedule.DeliveryDate == nil},
		{fieldPickupSlot, schedule.PickupTimeSlot, schedule.PickupTimeSlot == ""},
		{fieldDeliverySlot, schedule.DeliveryTimeSlot, schedule.DeliveryTimeSlot == ""},
	}

	for _, f := range fields {
		key := sessionKey(sessionID, f.field)

		if f.unset {
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
			}

			continue
		}

		if err := s.setJSON(ctx, key, f.value); err != nil {
			return err
		}
	}

	return nil
}

func (s *sessionStore) GetReceiptPath(ctx context.Context, sessionID string) (string, error) {
	var path string

	if _, err := s.getJSON(ctx, sessionKey(sessionID, fieldReceiptPath), &path); err != nil {
		return "", err
	}

	return path, nil
}

func (s *sessionStore) SaveReceiptPath(ctx context.Context, sessionID, path string) error {
	return s.setJSON(ctx, sessionKey(sessionID, fieldReceiptPath), path)
}

// Clear drops all wizard state of one session, called after a
// successful booking submission.
func (s *sessionStore) Clear(ctx context.Context, sessionID string) error {
	keys := []string{
		sessionKey(sessionID, fieldCart),
		sessionKey(sessionID, fieldPickupDate),
		sessionKey(sessionID, fieldDeliveryDate),
		sessionKey(sessionID, fieldPickupSlot),
		sessionKey(sessionID, fieldDeliverySlot),
		sessionKey(sessionID, fieldReceiptPath),
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", sessionID, err)
	}

	return nil
}
