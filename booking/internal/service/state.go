package service

import (
	"time"

	"github.com/Astemirdum/booking-service/booking/internal/errs"
	"github.com/Astemirdum/booking-service/booking/internal/model"
)

// The four status axes are orthogonal one-way machines; the overall status
// is derived from the others. Every rule below mutates the booking only
// after all preconditions hold, so a failed transition leaves it untouched.

func confirmByPartner(b *model.Booking) error {
	if b.Partner != model.PartnerPending || b.Status != model.StatusCreated {
		return errs.ErrIllegalTransition
	}
	b.Partner = model.PartnerConfirmed
	b.Status = model.StatusConfirmed
	return nil
}

func rejectByPartner(b *model.Booking) error {
	if b.Partner != model.PartnerPending || b.Status != model.StatusCreated {
		return errs.ErrIllegalTransition
	}
	b.Partner = model.PartnerRejected
	b.Status = model.StatusRejected
	return nil
}

func assignDriver(b *model.Booking, driverUid string) error {
	if b.Driver != model.DriverPending || !b.Active() {
		return errs.ErrIllegalTransition
	}
	b.DriverUid = &driverUid
	return nil
}

func acceptByDriver(b *model.Booking, driverUid string) error {
	if b.Driver != model.DriverPending || !b.Active() {
		return errs.ErrIllegalTransition
	}
	if b.DriverUid == nil || *b.DriverUid != driverUid {
		return errs.ErrForbidden
	}
	b.Driver = model.DriverAccepted
	return nil
}

func rejectByDriver(b *model.Booking, driverUid string) error {
	if b.Driver != model.DriverPending {
		return errs.ErrIllegalTransition
	}
	if b.DriverUid == nil || *b.DriverUid != driverUid {
		return errs.ErrForbidden
	}
	b.Driver = model.DriverRejected
	// a rejected driver kills a not-yet-confirmed booking
	if b.Status == model.StatusCreated {
		b.Status = model.StatusRejected
	}
	return nil
}

func applyPayment(b *model.Booking, target model.PaymentStatus) error {
	legal := map[model.PaymentStatus][]model.PaymentStatus{
		model.PaymentPending:   {model.PaymentCompleted, model.PaymentFailed},
		model.PaymentFailed:    {model.PaymentPending}, // gateway retry
		model.PaymentCompleted: {model.PaymentRefunded},
	}
	for _, s := range legal[b.Payment] {
		if s == target {
			b.Payment = target
			return nil
		}
	}
	return errs.ErrIllegalTransition
}

func cancel(b *model.Booking, now time.Time) error {
	if !b.Active() || !now.Before(b.StartDate) {
		return errs.ErrIllegalTransition
	}
	b.Status = model.StatusCancelled
	return nil
}

func complete(b *model.Booking, now time.Time) error {
	if b.Status != model.StatusConfirmed || b.Payment != model.PaymentCompleted || now.Before(b.EndDate) {
		return errs.ErrIllegalTransition
	}
	b.Status = model.StatusCompleted
	return nil
}
