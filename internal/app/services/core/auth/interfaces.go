package auth

import (
	"context"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RequestOTP(ctx context.Context, request *requests.RequestOTP) error
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
