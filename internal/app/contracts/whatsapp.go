package contracts

import (
	"context"
	"trimline-service/internal/pkg/dto/requests"
)

type WhatsAppService interface {
	SendWhatsAppMessage(ctx context.Context, request *requests.WhatsAppMessage) error
}
