package utils

import (
	"context"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

// AuthContext - явный контекст аутентификации, который middleware кладёт в запрос.
type AuthContext struct {
	UserID  uint64
	TokenID string
}

func WithAuthContext(ctx context.Context, auth AuthContext) context.Context {
	return context.WithValue(ctx, contextkeys.AuthKey, auth)
}

func GetAuthFromCtx(ctx context.Context) (AuthContext, error) {
	auth, ok := ctx.Value(contextkeys.AuthKey).(AuthContext)
	if !ok || auth.UserID == 0 {
		return AuthContext{}, apperrors.ErrUserIDNotFoundInContext
	}
	return auth, nil
}

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	auth, err := GetAuthFromCtx(ctx)
	if err != nil {
		return 0, err
	}
	return auth.UserID, nil
}
