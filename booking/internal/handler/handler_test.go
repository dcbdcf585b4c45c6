package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/booking-service/booking/internal/errs"
	"github.com/Astemirdum/booking-service/booking/internal/handler"
	"github.com/Astemirdum/booking-service/booking/internal/model"
	"github.com/Astemirdum/booking-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/booking-service/booking/internal/handler/mocks"
)

const (
	testCarUid      = "0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a"
	testBookingUid  = "b2f1a6ce-20c9-4cfa-9dc4-1e3ae64b1a17"
	testCustomerUid = "customer-7"
	testPartnerUid  = "partner-lux-fleet"
)

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockBookingService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockBookingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))
	return h.NewRouter(), svc
}

func sampleBooking() model.Booking {
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return model.Booking{
		BookingUid:    testBookingUid,
		CarUid:        testCarUid,
		CustomerUid:   testCustomerUid,
		PartnerUid:    testPartnerUid,
		StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		DurationUnits: 5,
		RentalUnit:    model.UnitDay,
		TotalAmount:   25000,
		Status:        model.StatusCreated,
		Partner:       model.PartnerPending,
		Driver:        model.DriverNotRequired,
		Payment:       model.PaymentPending,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}

const sampleBookingJSON = `{"bookingUid":"b2f1a6ce-20c9-4cfa-9dc4-1e3ae64b1a17","carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","customerUid":"customer-7","partnerUid":"partner-lux-fleet","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z","durationUnits":5,"rentalUnit":"DAY","totalAmount":25000,"status":"CREATED","partnerApproval":"PENDING","driverAssignment":"NOT_REQUIRED","paymentStatus":"PENDING","createdAt":"2026-08-29T10:00:00Z","updatedAt":"2026-08-29T10:00:00Z"}`

func TestHandler_CreateBooking(t *testing.T) {
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		noActor      bool
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), model.CreateBookingRequest{
						CarUid:      testCarUid,
						StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
						EndDate:     time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
						TotalAmount: 25000,
						CustomerUid: testCustomerUid,
					}).
					Return(sampleBooking(), nil)
			},
			body: `{"carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z","totalAmount":25000}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: sampleBookingJSON,
			},
		},
		{
			name:         "err. no identity headers",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			body:         `{"carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z"}`,
			noActor:      true,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-name is empty"}`,
			},
		},
		{
			name:         "err. carUid not a uuid",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			body:         `{"carUid":"sedan-1","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateBookingRequest.CarUid' Error:Field validation for 'CarUid' failed on the 'uuid' tag"}`,
			},
		},
		{
			name: "err. interval conflict",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrConflict)
			},
			body: `{"carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z","totalAmount":25000}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"interval overlaps an active booking"}`,
			},
		},
		{
			name: "err. unknown car",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.Wrap(errs.ErrNotFound, "get car"))
			},
			body: `{"carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z","totalAmount":25000}`,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"get car: not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if !tt.noActor {
				r.Header.Set(auth.XUserNameHeader, testCustomerUid)
				r.Header.Set(auth.XUserRoleHeader, string(auth.RoleCustomer))
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ConfirmBooking(t *testing.T) {
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	confirmed := sampleBooking()
	confirmed.Status = model.StatusConfirmed
	confirmed.Partner = model.PartnerConfirmed

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		role         auth.Role
		actorID      string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					ConfirmBooking(gomock.Any(), auth.Actor{ID: testPartnerUid, Role: auth.RolePartner}, testBookingUid).
					Return(confirmed, nil)
			},
			role:    auth.RolePartner,
			actorID: testPartnerUid,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookingUid":"b2f1a6ce-20c9-4cfa-9dc4-1e3ae64b1a17","carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","customerUid":"customer-7","partnerUid":"partner-lux-fleet","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z","durationUnits":5,"rentalUnit":"DAY","totalAmount":25000,"status":"CONFIRMED","partnerApproval":"CONFIRMED","driverAssignment":"NOT_REQUIRED","paymentStatus":"PENDING","createdAt":"2026-08-29T10:00:00Z","updatedAt":"2026-08-29T10:00:00Z"}`,
			},
		},
		{
			name: "err. not the partner",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					ConfirmBooking(gomock.Any(), auth.Actor{ID: testCustomerUid, Role: auth.RoleCustomer}, testBookingUid).
					Return(model.Booking{}, errs.ErrForbidden)
			},
			role:    auth.RoleCustomer,
			actorID: testCustomerUid,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"actor is not allowed to perform this action"}`,
			},
		},
		{
			name: "err. already decided",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					ConfirmBooking(gomock.Any(), gomock.Any(), testBookingUid).
					Return(model.Booking{}, errs.ErrIllegalTransition)
			},
			role:    auth.RolePartner,
			actorID: testPartnerUid,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"illegal status transition"}`,
			},
		},
		{
			name: "err. unknown booking",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					ConfirmBooking(gomock.Any(), gomock.Any(), testBookingUid).
					Return(model.Booking{}, errs.ErrNotFound)
			},
			role:    auth.RolePartner,
			actorID: testPartnerUid,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+testBookingUid+"/confirm", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, tt.actorID)
			r.Header.Set(auth.XUserRoleHeader, string(tt.role))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PaymentCallback(t *testing.T) {
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	paid := sampleBooking()
	paid.Payment = model.PaymentCompleted

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok without identity headers",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					PaymentCallback(gomock.Any(), testBookingUid, model.PaymentCompleted).
					Return(paid, nil)
			},
			body: `{"paymentStatus":"COMPLETED"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookingUid":"b2f1a6ce-20c9-4cfa-9dc4-1e3ae64b1a17","carUid":"0cbff8a5-49fc-44cb-8040-8c4ba64a2b3a","customerUid":"customer-7","partnerUid":"partner-lux-fleet","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-06T00:00:00Z","durationUnits":5,"rentalUnit":"DAY","totalAmount":25000,"status":"CREATED","partnerApproval":"PENDING","driverAssignment":"NOT_REQUIRED","paymentStatus":"COMPLETED","createdAt":"2026-08-29T10:00:00Z","updatedAt":"2026-08-29T10:00:00Z"}`,
			},
		},
		{
			name:         "err. unknown status",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			body:         `{"paymentStatus":"SETTLED"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'PaymentCallbackRequest.PaymentStatus' Error:Field validation for 'PaymentStatus' failed on the 'oneof' tag"}`,
			},
		},
		{
			name: "err. refund before completion",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					PaymentCallback(gomock.Any(), testBookingUid, model.PaymentRefunded).
					Return(model.Booking{}, errs.ErrIllegalTransition)
			},
			body: `{"paymentStatus":"REFUNDED"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"illegal status transition"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+testBookingUid+"/payment", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetNotifications(t *testing.T) {
	e, svc := newTestRouter(t)
	svc.EXPECT().
		GetNotifications(gomock.Any(), auth.Actor{ID: testCustomerUid, Role: auth.RoleCustomer}).
		Return([]model.Notification{
			{
				ReceiverUid: testCustomerUid,
				Role:        string(auth.RoleCustomer),
				Title:       "Booking confirmed",
				Body:        "your booking was confirmed by the partner",
				BookingUid:  testBookingUid,
				CreatedAt:   time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", http.NoBody)
	r.Header.Set(auth.XUserNameHeader, testCustomerUid)
	r.Header.Set(auth.XUserRoleHeader, string(auth.RoleCustomer))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"receiverUid":"customer-7","role":"CUSTOMER","title":"Booking confirmed","body":"your booking was confirmed by the partner","bookingUid":"b2f1a6ce-20c9-4cfa-9dc4-1e3ae64b1a17","isRead":false,"createdAt":"2026-08-29T10:00:00Z"}]`,
		strings.Trim(w.Body.String(), "\n"))
}
