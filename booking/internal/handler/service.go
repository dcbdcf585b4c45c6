package handler

import (
	"context"

	"github.com/Astemirdum/booking-service/booking/internal/model"
	"github.com/Astemirdum/booking-service/pkg/auth"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	GetBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)
	GetBookings(ctx context.Context, actor auth.Actor) ([]model.Booking, error)
	GetBookingsByCar(ctx context.Context, actor auth.Actor, carUid string) ([]model.Booking, error)

	ConfirmBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)
	RejectBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)
	AssignDriver(ctx context.Context, actor auth.Actor, bookingUid, driverUid string) (model.Booking, error)
	DriverAccept(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)
	DriverReject(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)
	PaymentCallback(ctx context.Context, bookingUid string, target model.PaymentStatus) (model.Booking, error)
	CancelBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)
	CompleteBooking(ctx context.Context, actor auth.Actor, bookingUid string) (model.Booking, error)

	GetNotifications(ctx context.Context, actor auth.Actor) ([]model.Notification, error)
	DeleteNotifications(ctx context.Context, actor auth.Actor) error
}
