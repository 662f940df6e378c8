package utils

import (
	"context"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// GetSessionFromContext reads the session the Authenticate middleware stored.
// Absence means the request never carried a resolved identity.
func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	sessionData, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if sessionData == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
