package model

import (
	"time"
)

// Status is the overall booking status.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// PartnerApproval is the fleet partner's decision axis.
type PartnerApproval string

const (
	PartnerPending   PartnerApproval = "PENDING"
	PartnerConfirmed PartnerApproval = "CONFIRMED"
	PartnerRejected  PartnerApproval = "REJECTED"
)

// DriverAssignment is the driver axis. NOT_REQUIRED is fixed at creation
// and never transitions; a requested driver starts at PENDING.
type DriverAssignment string

const (
	DriverNotRequired DriverAssignment = "NOT_REQUIRED"
	DriverPending     DriverAssignment = "PENDING"
	DriverAccepted    DriverAssignment = "ACCEPTED"
	DriverRejected    DriverAssignment = "REJECTED"
)

// PaymentStatus is the settlement axis, driven by the payment gateway.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// RentalUnit is the billing granularity of a car category.
type RentalUnit string

const (
	UnitDay  RentalUnit = "DAY"
	UnitHour RentalUnit = "HOUR"
)

func (u RentalUnit) Duration() time.Duration {
	if u == UnitHour {
		return time.Hour
	}
	return 24 * time.Hour
}

type Booking struct {
	ID            int              `json:"-" db:"id"`
	BookingUid    string           `json:"bookingUid" db:"booking_uid"`
	CarUid        string           `json:"carUid" db:"car_uid"`
	CustomerUid   string           `json:"customerUid" db:"customer_uid"`
	PartnerUid    string           `json:"partnerUid" db:"partner_uid"`
	DriverUid     *string          `json:"driverUid,omitempty" db:"driver_uid"`
	StartDate     time.Time        `json:"startDate" db:"start_date"`
	EndDate       time.Time        `json:"endDate" db:"end_date"`
	DurationUnits int              `json:"durationUnits" db:"duration_units"`
	RentalUnit    RentalUnit       `json:"rentalUnit" db:"rental_unit"`
	TotalAmount   int64            `json:"totalAmount" db:"total_amount"`
	Status        Status           `json:"status" db:"status"`
	Partner       PartnerApproval  `json:"partnerApproval" db:"partner_approval"`
	Driver        DriverAssignment `json:"driverAssignment" db:"driver_assignment"`
	Payment       PaymentStatus    `json:"paymentStatus" db:"payment_status"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
}

// Active reports whether the booking still claims its interval.
// Only CREATED and CONFIRMED bookings block overlapping requests.
func (b Booking) Active() bool {
	return b.Status == StatusCreated || b.Status == StatusConfirmed
}

// DurationUnits is ceil((end-start)/unit). The stored column must always
// equal this recomputation.
func DurationUnits(start, end time.Time, unit RentalUnit) int {
	span := end.Sub(start)
	u := unit.Duration()
	n := int(span / u)
	if span%u != 0 {
		n++
	}
	return n
}

type Car struct {
	ID         int        `json:"-" db:"id"`
	CarUid     string     `json:"carUid" db:"car_uid"`
	PartnerUid string     `json:"partnerUid" db:"partner_uid"`
	Category   string     `json:"category" db:"category"`
	RentalUnit RentalUnit `json:"rentalUnit" db:"rental_unit"`
	PriceCents int64      `json:"priceCents" db:"price_cents"`
}

type CreateBookingRequest struct {
	CarUid         string    `json:"carUid" validate:"required,uuid"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required"`
	DriverRequired bool      `json:"driverRequired"`
	TotalAmount    int64     `json:"totalAmount" validate:"gte=0"`
	CustomerUid    string    `validate:"required"`
}

type AssignDriverRequest struct {
	DriverUid string `json:"driverUid" validate:"required,uuid"`
}

// PaymentCallbackRequest is the gateway callback payload.
type PaymentCallbackRequest struct {
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required,oneof=COMPLETED FAILED PENDING REFUNDED"`
}

type Notification struct {
	ID          int       `json:"-" db:"id"`
	ReceiverUid string    `json:"receiverUid" db:"receiver_uid"`
	Role        string    `json:"role" db:"role"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	BookingUid  string    `json:"bookingUid" db:"booking_uid"`
	IsRead      bool      `json:"isRead" db:"is_read"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
