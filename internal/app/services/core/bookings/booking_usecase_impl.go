package bookings

import (
	"context"
	"sort"
	"sync"
	"time"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/app/services/core/slot"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
	"trimline-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository       contracts.BookingRepository
	CartRepository          contracts.CartRepository
	LockerService           contracts.LockerService
	Log                     *zap.Logger
	BookingLockTimeInSecond int
}

var (
	bookingUsecaseInstance BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	cartRepository contracts.CartRepository,
	lockerService contracts.LockerService,
	logger *zap.Logger,
	bookingLockTimeInSecond int,
) BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository:       bookingRepository,
			CartRepository:          cartRepository,
			LockerService:           lockerService,
			Log:                     logger,
			BookingLockTimeInSecond: bookingLockTimeInSecond,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) GetAvailability(ctx context.Context, date string, candidateDurationMinutes int) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingDateKey, date),
	)

	if _, err := parseBookingDate(date); err != nil {
		return nil, err
	}

	dayBookings, err := uc.BookingRepository.FindConfirmedBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	blocked, err := slot.ComputeBlockedSlots(bookedIntervals(dayBookings), candidateDurationMinutes)
	if err != nil {
		return nil, err
	}

	blockedLabels := make([]string, 0, len(blocked))
	for label := range blocked {
		blockedLabels = append(blockedLabels, label)
	}
	sort.Slice(blockedLabels, func(i, j int) bool {
		a, _ := slot.ParseSlotLabel(blockedLabels[i])
		b, _ := slot.ParseSlotLabel(blockedLabels[j])
		return a < b
	})

	return &responses.Availability{
		Date:         date,
		Slots:        slot.Grid(),
		BlockedSlots: blockedLabels,
	}, nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, userID string, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingBookingDateKey, request.Date),
		zap.String(constvars.LoggingSlotLabelKey, request.StartTime),
	)

	if _, err := parseBookingDate(request.Date); err != nil {
		return nil, err
	}

	cart, err := uc.CartRepository.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, exceptions.ErrBookingEmptyCart(nil)
	}

	// Totals are always derived from the item snapshots, never taken from
	// the client.
	totalPrice := cart.TotalPrice()
	totalDurationMinutes := cart.TotalDurationMinutes()

	// One writer per day at a time. The lock only narrows the race window;
	// the authoritative check is the fresh read below, performed while the
	// lock is held.
	lockKey := constvars.RedisKeyPrefixBookingLock + request.Date
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, time.Duration(uc.BookingLockTimeInSecond)*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("bookingUsecase.CreateBooking error releasing day lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	dayBookings, err := uc.BookingRepository.FindConfirmedBookingsByDate(ctx, request.Date)
	if err != nil {
		return nil, err
	}

	startMinutes, err := slot.ValidateSelection(request.StartTime, bookedIntervals(dayBookings), totalDurationMinutes)
	if err != nil {
		return nil, err
	}

	items := make([]models.BookingItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.BookingItem{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
			Category:        item.Category,
		})
	}

	now := time.Now()
	booking := &models.Booking{
		UserID:               userID,
		ContactName:          request.ContactName,
		ContactPhone:         request.ContactPhone,
		Date:                 request.Date,
		StartTime:            slot.FormatSlotLabel(startMinutes),
		StartMinutes:         startMinutes,
		TotalPrice:           totalPrice,
		TotalDurationMinutes: totalDurationMinutes,
		Status:               models.BookingStatusConfirmed,
		Items:                items,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	// The cart is spent. A failure here must not undo the booking.
	if err := uc.CartRepository.ClearCart(ctx, userID); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error clearing cart after commit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}

	if objectID, idErr := primitive.ObjectIDFromHex(bookingID); idErr == nil {
		booking.ID = objectID
	}

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) ListUserBookings(ctx context.Context, userID string) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListUserBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	userBookings, err := uc.BookingRepository.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Booking, 0, len(userBookings))
	for i := range userBookings {
		result = append(result, *buildBookingResponse(&userBookings[i]))
	}
	return result, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, userID, bookingID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	return uc.BookingRepository.DeleteBookingByIDAndUserID(ctx, bookingID, userID)
}
