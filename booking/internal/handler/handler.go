package handler

import (
	"net/http"

	"github.com/Astemirdum/booking-service/booking/internal/errs"
	"github.com/Astemirdum/booking-service/booking/internal/model"
	"github.com/Astemirdum/booking-service/pkg/auth"
	"github.com/Astemirdum/booking-service/pkg/validate"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	bookingSvc BookingService
	log        *zap.Logger
}

func New(bookingSvc BookingService, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/bookings", h.CreateBooking, actorMiddleware)
	api.GET("/bookings", h.GetBookings, actorMiddleware)
	api.GET("/bookings/:bookingUid", h.GetBooking, actorMiddleware)
	api.GET("/cars/:carUid/bookings", h.GetBookingsByCar, actorMiddleware)

	api.POST("/bookings/:bookingUid/confirm", h.ConfirmBooking, actorMiddleware)
	api.POST("/bookings/:bookingUid/reject", h.RejectBooking, actorMiddleware)
	api.POST("/bookings/:bookingUid/driver", h.AssignDriver, actorMiddleware)
	api.POST("/bookings/:bookingUid/driver/accept", h.DriverAccept, actorMiddleware)
	api.POST("/bookings/:bookingUid/driver/reject", h.DriverReject, actorMiddleware)
	api.POST("/bookings/:bookingUid/cancel", h.CancelBooking, actorMiddleware)
	api.POST("/bookings/:bookingUid/complete", h.CompleteBooking, actorMiddleware)

	// gateway callback carries its own shared-secret auth upstream
	api.POST("/bookings/:bookingUid/payment", h.PaymentCallback)

	api.GET("/notifications", h.GetNotifications, actorMiddleware)
	api.DELETE("/notifications", h.DeleteNotifications, actorMiddleware)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := auth.ActorFromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.CustomerUid = actor.ID

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.bookingSvc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetBookings(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.bookingSvc.GetBookings(ctx, actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBooking(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookingUid := c.Param("bookingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingUid is empty")
	}
	resp, err := h.bookingSvc.GetBooking(ctx, actor, bookingUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBookingsByCar(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	carUid := c.Param("carUid")
	if carUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "carUid is empty")
	}
	items, err := h.bookingSvc.GetBookingsByCar(ctx, actor, carUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// transition wraps the common shape of the lifecycle endpoints.
func (h *Handler) transition(c echo.Context, op func(ctx echo.Context, actor auth.Actor, bookingUid string) (model.Booking, error)) error {
	actor, err := auth.ActorFromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookingUid := c.Param("bookingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingUid is empty")
	}
	resp, err := op(c, actor, bookingUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		return h.bookingSvc.ConfirmBooking(c.Request().Context(), actor, uid)
	})
}

func (h *Handler) RejectBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		return h.bookingSvc.RejectBooking(c.Request().Context(), actor, uid)
	})
}

func (h *Handler) AssignDriver(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		var req model.AssignDriverRequest
		if err := c.Bind(&req); err != nil {
			return model.Booking{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := c.Validate(req); err != nil {
			return model.Booking{}, err
		}
		return h.bookingSvc.AssignDriver(c.Request().Context(), actor, uid, req.DriverUid)
	})
}

func (h *Handler) DriverAccept(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		return h.bookingSvc.DriverAccept(c.Request().Context(), actor, uid)
	})
}

func (h *Handler) DriverReject(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		return h.bookingSvc.DriverReject(c.Request().Context(), actor, uid)
	})
}

func (h *Handler) CancelBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		return h.bookingSvc.CancelBooking(c.Request().Context(), actor, uid)
	})
}

func (h *Handler) CompleteBooking(c echo.Context) error {
	return h.transition(c, func(c echo.Context, actor auth.Actor, uid string) (model.Booking, error) {
		return h.bookingSvc.CompleteBooking(c.Request().Context(), actor, uid)
	})
}

func (h *Handler) PaymentCallback(c echo.Context) error {
	bookingUid := c.Param("bookingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingUid is empty")
	}
	var req model.PaymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	resp, err := h.bookingSvc.PaymentCallback(c.Request().Context(), bookingUid, req.PaymentStatus)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.bookingSvc.GetNotifications(ctx, actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := h.bookingSvc.DeleteNotifications(ctx, actor); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidInterval):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrIllegalTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
