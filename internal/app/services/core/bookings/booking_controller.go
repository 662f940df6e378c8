package bookings

import (
	"context"
	"net/http"
	"strconv"
	"time"
	"trimline-service/internal/app/services/core/slot"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingUsecase BookingUsecase
	Log            *zap.Logger
}

func NewBookingController(bookingUsecase BookingUsecase, logger *zap.Logger) *BookingController {
	return &BookingController{
		BookingUsecase: bookingUsecase,
		Log:            logger,
	}
}

func (ctrl *BookingController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	candidateDurationMinutes := slot.StepMinutes
	if rawDuration := r.URL.Query().Get("duration"); rawDuration != "" {
		parsed, err := strconv.Atoi(rawDuration)
		if err != nil || parsed <= 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSlotInvalidDuration(err))
			return
		}
		candidateDurationMinutes = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	availability, err := ctrl.BookingUsecase.GetAvailability(ctx, date, candidateDurationMinutes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityFetchSuccessMessage, availability)
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateBooking)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateBookingRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := ctrl.BookingUsecase.CreateBooking(ctx, session.UserID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreateSuccessMessage, booking)
}

func (ctrl *BookingController) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userBookings, err := ctrl.BookingUsecase.ListUserBookings(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingsFetchSuccessMessage, userBookings)
}

func (ctrl *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	bookingID := chi.URLParam(r, "booking_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.BookingUsecase.CancelBooking(ctx, session.UserID, bookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingCancelSuccessMessage, nil)
}
