package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/booking-service/booking/internal/model"
	"github.com/Astemirdum/booking-service/booking/internal/repository"
	"github.com/Astemirdum/booking-service/pkg/auth"
	"github.com/Astemirdum/booking-service/pkg/kafka"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EventKind names a lifecycle transition for notification purposes.
type EventKind string

const (
	EventBookingCreated   EventKind = "BOOKING_CREATED"
	EventBookingConfirmed EventKind = "BOOKING_CONFIRMED"
	EventBookingRejected  EventKind = "BOOKING_REJECTED"
	EventBookingCancelled EventKind = "BOOKING_CANCELLED"
	EventBookingCompleted EventKind = "BOOKING_COMPLETED"
	EventDriverAssigned   EventKind = "DRIVER_ASSIGNED"
	EventDriverAccepted   EventKind = "DRIVER_ACCEPTED"
	EventDriverRejected   EventKind = "DRIVER_REJECTED"
	EventPaymentUpdated   EventKind = "PAYMENT_UPDATED"
)

type Event struct {
	Kind       EventKind
	BookingUid string
	Title      string
	Body       string
}

type Recipient struct {
	Role auth.Role
	Uid  string
}

// DeliveryResult is the outcome of a single recipient's delivery.
type DeliveryResult struct {
	Recipient Recipient
	Err       error
}

// Producer is the slice of sarama.SyncProducer the dispatcher needs.
type Producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

// Dispatcher fans a transition event out to its recipients: an inbox row is
// written and a push message is published per recipient. Delivery is
// best-effort; a failure for one recipient never affects the others and is
// never surfaced to the transition that triggered the event.
type Dispatcher struct {
	repo     repository.Repository
	producer Producer
	log      *zap.Logger
	timeout  time.Duration
}

func NewDispatcher(repo repository.Repository, producer Producer, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		producer: producer,
		log:      log.Named("dispatch"),
		timeout:  10 * time.Second,
	}
}

// Dispatch is fire-and-forget relative to the caller: it detaches from the
// request context and runs under the dispatcher's own timeout.
func (d *Dispatcher) Dispatch(event Event, recipients ...Recipient) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		for _, res := range d.Notify(ctx, event, recipients...) {
			if res.Err != nil {
				d.log.Warn("notification delivery failed",
					zap.String("kind", string(event.Kind)),
					zap.String("bookingUid", event.BookingUid),
					zap.String("recipient", res.Recipient.Uid),
					zap.Error(res.Err))
			}
		}
	}()
}

// Notify delivers the event to every recipient and reports per-recipient
// outcomes.
func (d *Dispatcher) Notify(ctx context.Context, event Event, recipients ...Recipient) []DeliveryResult {
	results := make([]DeliveryResult, len(recipients))
	g, ctx := errgroup.WithContext(ctx)
	for i, rec := range recipients {
		i, rec := i, rec
		g.Go(func() error {
			results[i] = DeliveryResult{Recipient: rec, Err: d.deliver(ctx, event, rec)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (d *Dispatcher) deliver(ctx context.Context, event Event, rec Recipient) error {
	if err := d.repo.CreateNotification(ctx, model.Notification{
		ReceiverUid: rec.Uid,
		Role:        string(rec.Role),
		Title:       event.Title,
		Body:        event.Body,
		BookingUid:  event.BookingUid,
	}); err != nil {
		return err
	}

	token, err := d.repo.DeviceToken(ctx, rec.Role, rec.Uid)
	if err != nil {
		// no registered device is a delivery failure for this recipient only
		return err
	}

	data, err := json.Marshal(kafka.PushMessage{
		DeviceToken: token,
		Title:       event.Title,
		Body:        event.Body,
		Data: map[string]string{
			"kind":       string(event.Kind),
			"bookingUid": event.BookingUid,
		},
	})
	if err != nil {
		return err
	}
	_, _, err = d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: kafka.NotificationsTopic,
		Key:   sarama.StringEncoder(rec.Uid),
		Value: sarama.ByteEncoder(data),
	})
	return err
}
