package auth

import "context"

type trainerIDKey struct{}

// WithTrainerID returns a copy of ctx carrying the authenticated trainer id.
func WithTrainerID(ctx context.Context, trainerID int64) context.Context {
	return context.WithValue(ctx, trainerIDKey{}, trainerID)
}

func TrainerIDFromContext(ctx context.Context) (int64, bool) {
	trainerID, ok := ctx.Value(trainerIDKey{}).(int64)
	if !ok || trainerID <= 0 {
		return 0, false
	}
	return trainerID, true
}
