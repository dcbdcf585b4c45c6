package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/booking-service/booking/internal/errs"
	"github.com/Astemirdum/booking-service/booking/internal/model"
	"github.com/Astemirdum/booking-service/booking/internal/repository"
	"github.com/Astemirdum/booking-service/pkg/auth"

	"go.uber.org/zap"
)

type Service struct {
	log        *zap.Logger
	repo       repository.Repository
	dispatcher *Dispatcher
	now        func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used by time-gated transitions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, dispatcher *Dispatcher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:        log,
		repo:       repo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking validates the request against the car, the customer and the
// overlap index, and persists the booking in its initial state. The overlap
// check and the insert are linearized per conflict key by the repository.
func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	car, err := s.repo.GetCar(ctx, req.CarUid)
	if err != nil {
		return model.Booking{}, err
	}
	if !req.StartDate.Before(req.EndDate) {
		return model.Booking{}, errs.ErrInvalidInterval
	}

	driver := model.DriverNotRequired
	if req.DriverRequired {
		driver = model.DriverPending
	}
	b := model.Booking{
		CarUid:        req.CarUid,
		CustomerUid:   req.CustomerUid,
		PartnerUid:    car.PartnerUid,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DurationUnits: model.DurationUnits(req.StartDate, req.EndDate, car.RentalUnit),
		RentalUnit:    car.RentalUnit,
		TotalAmount:   req.TotalAmount,
		Status:        model.StatusCreated,
		Partner:       model.PartnerPending,
		Driver:        driver,
		Payment:       model.PaymentPending,
	}
	res, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		return model.Booking{}, err
	}

	s.dispatcher.Dispatch(Event{
		Kind:       EventBookingCreated,
		BookingUid: res.BookingUid,
		Title:      "New booking request",
		Body:       fmt.Sprintf("Car %s is requested from %s to %s", res.CarUid, res.StartDate.Format(time.DateOnly), res.EndDate.Format(time.DateOnly)),
	}, Recipient{Role: auth.RolePartner, Uid: res.PartnerUid})

	return res, nil
}

func (s *Service) GetBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.GetBooking(ctx, bookingUid)
	if err != nil {
		return model.Booking{}, err
	}
	if !isParty(b, actor) {
		return model.Booking{}, errs.ErrForbidden
	}
	return b, nil
}

// GetBookings lists the bookings the actor is a party to: customers see
// their own, partners their whole fleet, drivers their assignments.
func (s *Service) GetBookings(ctx context.Context, actor auth.Actor) ([]model.Booking, error) {
	switch actor.Role {
	case auth.RoleCustomer:
		return s.repo.GetBookingsByCustomer(ctx, actor.ID)
	case auth.RolePartner:
		return s.repo.GetBookingsByPartner(ctx, actor.ID)
	case auth.RoleDriver:
		return s.repo.GetBookingsByDriver(ctx, actor.ID)
	}
	return nil, errs.ErrForbidden
}

func (s *Service) GetBookingsByCar(ctx context.Context, actor auth.Actor, carUid string) ([]model.Booking, error) {
	car, err := s.repo.GetCar(ctx, carUid)
	if err != nil {
		return nil, err
	}
	if actor.Role != auth.RolePartner || car.PartnerUid != actor.ID {
		return nil, errs.ErrForbidden
	}
	return s.repo.GetBookingsByCar(ctx, carUid)
}

// ConfirmBooking is the partner approval: partner axis PENDING->CONFIRMED
// pulls the overall status CREATED->CONFIRMED.
func (s *Service) ConfirmBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		if actor.Role != auth.RolePartner || b.PartnerUid != actor.ID {
			return errs.ErrForbidden
		}
		return confirmByPartner(b)
	})
	if err != nil {
		return model.Booking{}, err
	}

	recipients := []Recipient{{Role: auth.RoleCustomer, Uid: b.CustomerUid}}
	if b.DriverUid != nil {
		recipients = append(recipients, Recipient{Role: auth.RoleDriver, Uid: *b.DriverUid})
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventBookingConfirmed,
		BookingUid: b.BookingUid,
		Title:      "Booking confirmed",
		Body:       fmt.Sprintf("Your booking of car %s was confirmed by the partner", b.CarUid),
	}, recipients...)
	return b, nil
}

func (s *Service) RejectBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		if actor.Role != auth.RolePartner || b.PartnerUid != actor.ID {
			return errs.ErrForbidden
		}
		return rejectByPartner(b)
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventBookingRejected,
		BookingUid: b.BookingUid,
		Title:      "Booking rejected",
		Body:       fmt.Sprintf("Your booking of car %s was rejected by the partner", b.CarUid),
	}, Recipient{Role: auth.RoleCustomer, Uid: b.CustomerUid})
	return b, nil
}

func (s *Service) AssignDriver(ctx context.Context, actor auth.Actor, bookingUid, driverUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		if actor.Role != auth.RolePartner || b.PartnerUid != actor.ID {
			return errs.ErrForbidden
		}
		return assignDriver(b, driverUid)
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventDriverAssigned,
		BookingUid: b.BookingUid,
		Title:      "New drive assignment",
		Body:       fmt.Sprintf("You are assigned to drive car %s from %s", b.CarUid, b.StartDate.Format(time.DateOnly)),
	}, Recipient{Role: auth.RoleDriver, Uid: driverUid})
	return b, nil
}

func (s *Service) DriverAccept(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		if actor.Role != auth.RoleDriver {
			return errs.ErrForbidden
		}
		return acceptByDriver(b, actor.ID)
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventDriverAccepted,
		BookingUid: b.BookingUid,
		Title:      "Driver accepted",
		Body:       fmt.Sprintf("The driver accepted the booking of car %s", b.CarUid),
	},
		Recipient{Role: auth.RolePartner, Uid: b.PartnerUid},
		Recipient{Role: auth.RoleCustomer, Uid: b.CustomerUid},
	)
	return b, nil
}

func (s *Service) DriverReject(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		if actor.Role != auth.RoleDriver {
			return errs.ErrForbidden
		}
		return rejectByDriver(b, actor.ID)
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventDriverRejected,
		BookingUid: b.BookingUid,
		Title:      "Driver rejected",
		Body:       fmt.Sprintf("The driver rejected the booking of car %s", b.CarUid),
	},
		Recipient{Role: auth.RolePartner, Uid: b.PartnerUid},
		Recipient{Role: auth.RoleCustomer, Uid: b.CustomerUid},
	)
	return b, nil
}

// PaymentCallback advances the payment axis on behalf of the gateway.
func (s *Service) PaymentCallback(ctx context.Context, bookingUid string, target model.PaymentStatus) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		return applyPayment(b, target)
	})
	if err != nil {
		return model.Booking{}, err
	}
	recipients := []Recipient{{Role: auth.RoleCustomer, Uid: b.CustomerUid}}
	if target == model.PaymentCompleted {
		recipients = append(recipients, Recipient{Role: auth.RolePartner, Uid: b.PartnerUid})
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventPaymentUpdated,
		BookingUid: b.BookingUid,
		Title:      "Payment update",
		Body:       fmt.Sprintf("Payment for booking of car %s is now %s", b.CarUid, b.Payment),
	}, recipients...)
	return b, nil
}

// CancelBooking is available to the customer and the partner, only before
// the rental starts. A cancelled booking immediately frees its interval.
func (s *Service) CancelBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		switch {
		case actor.Role == auth.RoleCustomer && b.CustomerUid == actor.ID:
		case actor.Role == auth.RolePartner && b.PartnerUid == actor.ID:
		default:
			return errs.ErrForbidden
		}
		return cancel(b, s.now())
	})
	if err != nil {
		return model.Booking{}, err
	}

	counterpart := Recipient{Role: auth.RolePartner, Uid: b.PartnerUid}
	if actor.Role == auth.RolePartner {
		counterpart = Recipient{Role: auth.RoleCustomer, Uid: b.CustomerUid}
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventBookingCancelled,
		BookingUid: b.BookingUid,
		Title:      "Booking cancelled",
		Body:       fmt.Sprintf("The booking of car %s was cancelled", b.CarUid),
	}, counterpart)
	return b, nil
}

func (s *Service) CompleteBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error) {
	b, err := s.repo.Transition(ctx, bookingUid, func(b *model.Booking) error {
		if actor.Role != auth.RolePartner || b.PartnerUid != actor.ID {
			return errs.ErrForbidden
		}
		return complete(b, s.now())
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.dispatcher.Dispatch(Event{
		Kind:       EventBookingCompleted,
		BookingUid: b.BookingUid,
		Title:      "Booking completed",
		Body:       fmt.Sprintf("The booking of car %s is completed", b.CarUid),
	},
		Recipient{Role: auth.RoleCustomer, Uid: b.CustomerUid},
		Recipient{Role: auth.RolePartner, Uid: b.PartnerUid},
	)
	return b, nil
}

func (s *Service) GetNotifications(ctx context.Context, actor auth.Actor) ([]model.Notification, error) {
	return s.repo.GetNotifications(ctx, actor.ID)
}

func (s *Service) DeleteNotifications(ctx context.Context, actor auth.Actor) error {
	return s.repo.DeleteNotifications(ctx, actor.ID)
}

func isParty(b model.Booking, actor auth.Actor) bool {
	switch actor.Role {
	case auth.RoleCustomer:
		return b.CustomerUid == actor.ID
	case auth.RolePartner:
		return b.PartnerUid == actor.ID
	case auth.RoleDriver:
		return b.DriverUid != nil && *b.DriverUid == actor.ID
	}
	return false
}
