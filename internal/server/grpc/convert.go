package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/gophauth/internal/proto/gophauth/v1"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toUser(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: timestamp(u.CreatedAt),
	}
}

// toAuthResponse builds the reply for a freshly issued pair; u may be nil.
func toAuthResponse(pair *models.IssuedTokenPair, accessTTL time.Duration, u *models.User) *pb.AuthResponse {
	return &pb.AuthResponse{
		AccessToken:      pair.AccessToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(accessTTL.Seconds()),
		RefreshToken:     pair.RefreshToken,
		Jti:              pair.JTI,
		RefreshExpiresAt: timestamp(pair.ExpiresAt),
		User:             toUser(u),
	}
}

func toSessions(records []*models.RefreshToken) *pb.SessionsResponse {
	out := &pb.SessionsResponse{Sessions: make([]*pb.Session, 0, len(records))}
	for _, r := range records {
		s := &pb.Session{
			Jti:       r.JTI,
			ClientId:  deref(r.ClientID),
			CreatedAt: timestamp(r.CreatedAt),
			ExpiresAt: timestamp(r.ExpiresAt),
			IpAddress: deref(r.IPAddress),
			UserAgent: deref(r.UserAgent),
		}
		if r.LastUsedAt != nil {
			s.LastUsedAt = timestamp(*r.LastUsedAt)
		}
		out.Sessions = append(out.Sessions, s)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
