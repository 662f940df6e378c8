package session

import (
	"context"
	"time"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionService struct {
	RedisRepository      contracts.RedisRepository
	SessionExpTimeInHour int
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionExpTimeInHour int) contracts.SessionService {
	return &sessionService{
		RedisRepository:      redisRepository,
		SessionExpTimeInHour: sessionExpTimeInHour,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	sessionID := uuid.NewString()
	err := svc.RedisRepository.Set(
		ctx,
		constvars.RedisKeyPrefixSession+sessionID,
		session,
		time.Duration(svc.SessionExpTimeInHour)*time.Hour,
	)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisKeyPrefixSession+sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.RedisKeyPrefixSession+sessionID)
}
