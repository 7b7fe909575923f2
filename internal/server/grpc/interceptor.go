package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto/gophauth/v1"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/ratelimit"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods require an authenticated principal.
var protectedMethods = map[string]bool{
	pb.AuthService_RevokeAll_FullMethodName:    true,
	pb.AuthService_ListSessions_FullMethodName: true,
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// credentials reads the access token (access_token or authorization metadata)
// and the API key from incoming metadata.
func credentials(ctx context.Context) (accessToken, apiKey string) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ""
	}
	accessToken = firstValue(md, common.AccessTokenHeaderName)
	if accessToken == "" {
		accessToken = auth.BearerToken(firstValue(md, "authorization"))
	}
	return accessToken, firstValue(md, common.APIKeyHeaderName)
}

// rateLimitInterceptor authenticates the caller when credentials are present,
// stores the principal in the context and charges its bucket. Invalid
// credentials are charged to the anonymous bucket.
func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	key := ratelimit.AnonymousKey

	accessToken, apiKey := credentials(ctx)
	if accessToken != "" || apiKey != "" {
		if p, err := s.authn.Authenticate(accessToken, apiKey); err == nil {
			ctx = auth.WithPrincipal(ctx, p)
			key = ratelimit.Key(p.ID, p.Role)
		}
	}

	if !s.limiter.TryAcquire(key) {
		s.logger.Warn(ctx, "rate limit exceeded", "key", key, "method", info.FullMethod)
		return nil, status.Error(codes.ResourceExhausted, common.ErrRateLimitExceeded.Error())
	}
	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if protectedMethods[info.FullMethod] {
		if _, ok := auth.PrincipalFromContext(ctx); !ok {
			accessToken, apiKey := credentials(ctx)
			if _, err := s.authn.Authenticate(accessToken, apiKey); err != nil {
				return nil, toStatus(err)
			}
			return nil, status.Error(codes.Unauthenticated, "unauthenticated")
		}
	}
	return handler(ctx, req)
}
