package context

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/dtroode/rewards-server/internal/model"
)

// userIDKey is the incoming metadata key carrying the authenticated user id.
const userIDKey string = "user_id"

// Manager stores the authenticated user id in incoming gRPC metadata.
type Manager struct{}

// NewManager returns a ContextManager that keeps the user id in incoming metadata.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext overwrites any user id already present in incoming metadata.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID model.UserID) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{userIDKey: userID.String()})
	} else {
		md = md.Copy()
		md.Set(userIDKey, userID.String())
	}

	return metadata.NewIncomingContext(ctx, md)
}

func (m *Manager) GetUserIDFromContext(ctx context.Context) (model.UserID, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return 0, false
	}

	userIDs := md.Get(userIDKey)
	if len(userIDs) == 0 {
		return 0, false
	}

	userID, err := model.ParseUserID(userIDs[0])
	if err != nil {
		return 0, false
	}

	return userID, true
}
