package grpc

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto/gophauth/v1"
	"github.com/dmitrijs2005/gophauth/internal/server/api"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// handler implements pb.AuthServiceServer on top of GRPCServer.
type handler struct {
	pb.UnimplementedAuthServiceServer
	s *GRPCServer
}

func toStatus(err error) error {
	return status.Error(api.Code(err), api.Message(err))
}

func (h *handler) fail(ctx context.Context, op string, err error) error {
	switch api.Code(err) {
	case codes.Internal:
		h.s.logger.Error(ctx, op+" failed", "error", err)
	case codes.PermissionDenied:
		h.s.logger.Warn(ctx, op+" rejected", "error", err)
	default:
		h.s.logger.Debug(ctx, op+" rejected", "error", err)
	}
	return toStatus(err)
}

func clientInfo(ctx context.Context, clientID string) services.ClientInfo {
	info := services.ClientInfo{ClientID: clientID}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		info.IPAddress = p.Addr.String()
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		info.UserAgent = firstValue(md, "user-agent")
	}
	return info
}

// setCookie mirrors the HTTP transport by sending the refresh cookie as
// header metadata.
func (h *handler) setCookie(ctx context.Context, pair *models.IssuedTokenPair) {
	var cookie string
	if pair == nil {
		cookie = auth.RefreshCookie("", 0, h.s.opts.CookieSecure).String()
	} else {
		cookie = auth.RefreshCookie(pair.RefreshToken, h.s.opts.RefreshTTL, h.s.opts.CookieSecure).String()
	}
	if err := grpc.SetHeader(ctx, metadata.Pairs("set-cookie", cookie)); err != nil {
		h.s.logger.Debug(ctx, "set-cookie header not sent", "error", err)
	}
}

func (h *handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	h.s.logger.Info(ctx, "Registration request")

	u, pair, err := h.s.users.Register(ctx, services.RegisterInput{
		Username: req.GetUsername(),
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
		Client:   clientInfo(ctx, req.GetClientId()),
	})
	if err != nil {
		return nil, h.fail(ctx, "register", err)
	}

	h.s.logger.Info(ctx, "Registered", "user_id", u.ID)
	h.setCookie(ctx, pair)
	return toAuthResponse(pair, h.s.opts.AccessTTL, u), nil
}

func (h *handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	u, pair, err := h.s.users.Login(ctx, req.GetEmail(), req.GetPassword(), clientInfo(ctx, req.GetClientId()))
	if err != nil {
		return nil, h.fail(ctx, "login", err)
	}
	h.setCookie(ctx, pair)
	return toAuthResponse(pair, h.s.opts.AccessTTL, u), nil
}

func (h *handler) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.AuthResponse, error) {
	raw := req.GetRefreshToken()
	if raw == "" {
		raw = cookieValue(ctx)
	}
	pair, err := h.s.users.Refresh(ctx, raw, clientInfo(ctx, req.GetClientId()))
	if err != nil {
		return nil, h.fail(ctx, "refresh", err)
	}
	h.setCookie(ctx, pair)
	return toAuthResponse(pair, h.s.opts.AccessTTL, nil), nil
}

func (h *handler) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.Empty, error) {
	var principal *auth.Principal
	if p, ok := auth.PrincipalFromContext(ctx); ok {
		principal = &p
	}
	if err := h.s.users.Logout(ctx, req.GetJti(), principal); err != nil {
		return nil, h.fail(ctx, "logout", err)
	}
	h.setCookie(ctx, nil)
	return &pb.Empty{}, nil
}

func (h *handler) RevokeAll(ctx context.Context, _ *pb.Empty) (*pb.RevokeAllResponse, error) {
	p, _ := auth.PrincipalFromContext(ctx)
	n, err := h.s.users.RevokeAll(ctx, p.ID)
	if err != nil {
		return nil, h.fail(ctx, "revoke all", err)
	}
	h.setCookie(ctx, nil)
	return &pb.RevokeAllResponse{Revoked: n}, nil
}

func (h *handler) ListSessions(ctx context.Context, _ *pb.Empty) (*pb.SessionsResponse, error) {
	p, _ := auth.PrincipalFromContext(ctx)
	sessions, err := h.s.users.Sessions(ctx, p.ID)
	if err != nil {
		return nil, h.fail(ctx, "list sessions", err)
	}
	return toSessions(sessions), nil
}

func (h *handler) StartPasswordReset(ctx context.Context, req *pb.StartPasswordResetRequest) (*pb.Empty, error) {
	if err := h.s.users.StartPasswordReset(ctx, req.GetEmail()); err != nil {
		return nil, h.fail(ctx, "start password reset", err)
	}
	return &pb.Empty{}, nil
}

func (h *handler) CompletePasswordReset(ctx context.Context, req *pb.CompletePasswordResetRequest) (*pb.Empty, error) {
	if err := h.s.users.CompletePasswordReset(ctx, req.GetToken(), req.GetNewPassword()); err != nil {
		return nil, h.fail(ctx, "complete password reset", err)
	}
	return &pb.Empty{}, nil
}

func (h *handler) Verify(ctx context.Context, req *pb.VerifyRequest) (*pb.VerifyResponse, error) {
	if req.GetToken() == "" {
		return nil, toStatus(common.ErrTokenNotFound)
	}
	claims, err := h.s.authn.Verify(req.GetToken())
	if err != nil {
		return nil, h.fail(ctx, "verify", err)
	}
	return &pb.VerifyResponse{
		Subject:   claims.Subject,
		Role:      claims.Role,
		Username:  claims.Username,
		IssuedAt:  timestamp(claims.IssuedAt),
		ExpiresAt: timestamp(claims.ExpiresAt),
	}, nil
}

func (h *handler) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// cookieValue returns the refresh_token cookie from incoming "cookie"
// metadata, if any.
func cookieValue(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	r := &http.Request{Header: http.Header{"Cookie": md.Get("cookie")}}
	c, err := r.Cookie(common.RefreshTokenCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
