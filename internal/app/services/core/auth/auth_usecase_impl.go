package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	WhatsAppService contracts.WhatsAppService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger

	limiterMu   sync.Mutex
	otpLimiters map[string]*rate.Limiter
}

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	whatsAppService contracts.WhatsAppService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			SessionService:  sessionService,
			WhatsAppService: whatsAppService,
			InternalConfig:  internalConfig,
			Log:             logger,
			otpLimiters:     make(map[string]*rate.Limiter),
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RequestOTP(ctx context.Context, request *requests.RequestOTP) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RequestOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, request.PhoneNumber),
	)

	if !uc.allowOTPRequest(request.PhoneNumber) {
		return exceptions.ErrOTPTooManyRequests(nil)
	}

	otp, err := utils.GenerateOTP(uc.InternalConfig.App.OTPLength)
	if err != nil {
		uc.Log.Error("authUsecase.RequestOTP error generating OTP",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrHashOTP(err)
	}

	otpHash, err := utils.HashOTP(otp)
	if err != nil {
		return exceptions.ErrHashOTP(err)
	}

	err = uc.RedisRepository.Set(
		ctx,
		constvars.RedisKeyPrefixOTP+request.PhoneNumber,
		otpHash,
		time.Duration(uc.InternalConfig.App.OTPExpTimeInMinute)*time.Minute,
	)
	if err != nil {
		return err
	}

	message := &requests.WhatsAppMessage{
		PhoneNumber: request.PhoneNumber,
		Message:     fmt.Sprintf("Your Trimline verification code is %s. It expires in %d minutes.", otp, uc.InternalConfig.App.OTPExpTimeInMinute),
	}
	err = uc.WhatsAppService.SendWhatsAppMessage(ctx, message)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.RequestOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, request.PhoneNumber),
	)
	return nil
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, request.PhoneNumber),
	)

	otpKey := constvars.RedisKeyPrefixOTP + request.PhoneNumber
	storedHash, err := uc.RedisRepository.Get(ctx, otpKey)
	if err != nil {
		return nil, err
	}
	if storedHash == "" {
		return nil, exceptions.ErrOTPExpired(nil)
	}

	// The hash went through the JSON marshal in the redis repository.
	storedHash = trimJSONQuotes(storedHash)
	if !utils.CheckOTPHash(request.OTP, storedHash) {
		return nil, exceptions.ErrOTPInvalid(nil)
	}

	if err := uc.RedisRepository.Delete(ctx, otpKey); err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByPhoneNumber(ctx, request.PhoneNumber)
	if err != nil {
		return nil, err
	}

	newUser := false
	var userID string
	if user == nil {
		now := time.Now()
		userID, err = uc.UserRepository.CreateUser(ctx, &models.User{
			PhoneNumber: request.PhoneNumber,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
		if err != nil {
			return nil, err
		}
		newUser = true
	} else {
		userID = user.ID.Hex()
	}

	sessionID, err := uc.SessionService.CreateSession(ctx, &models.Session{
		UserID:      userID,
		PhoneNumber: request.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.VerifyOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return &responses.Login{
		Token:       token,
		UserID:      userID,
		PhoneNumber: request.PhoneNumber,
		NewUser:     newUser,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

// allowOTPRequest enforces the per-phone request budget. Limiters live in
// memory; a restart resets them, which is acceptable for abuse throttling.
func (uc *authUsecase) allowOTPRequest(phoneNumber string) bool {
	uc.limiterMu.Lock()
	defer uc.limiterMu.Unlock()

	limiter, exists := uc.otpLimiters[phoneNumber]
	if !exists {
		perMinute := uc.InternalConfig.App.OTPMaxRequestsPerMinute
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		uc.otpLimiters[phoneNumber] = limiter
	}
	return limiter.Allow()
}

func trimJSONQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
