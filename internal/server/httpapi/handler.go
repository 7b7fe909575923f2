package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/api"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
)

func clientInfo(c *gin.Context, clientID string) services.ClientInfo {
	return services.ClientInfo{
		ClientID:  clientID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func (s *Server) setRefreshCookie(c *gin.Context, pair *models.IssuedTokenPair) {
	if pair == nil {
		http.SetCookie(c.Writer, auth.RefreshCookie("", 0, s.opts.CookieSecure))
		return
	}
	http.SetCookie(c.Writer, auth.RefreshCookie(pair.RefreshToken, s.opts.RefreshTTL, s.opts.CookieSecure))
}

func (s *Server) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, codes.InvalidArgument, "invalid request body")
		return false
	}
	return true
}

// bindOptional binds a JSON body that may be absent. An empty body, whether
// sent with Content-Length 0 or chunked, leaves dst untouched.
func (s *Server) bindOptional(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		fail(c, codes.InvalidArgument, "invalid request body")
		return false
	}
	return true
}

func (s *Server) health(c *gin.Context) {
	success(c, http.StatusOK, api.PingResponse{Status: "OK"})
}

func (s *Server) register(c *gin.Context) {
	var req api.RegisterRequest
	if !s.bind(c, &req) {
		return
	}
	u, pair, err := s.users.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Client:   clientInfo(c, req.ClientID),
	})
	if err != nil {
		failWith(c, err)
		return
	}
	s.setRefreshCookie(c, pair)
	success(c, http.StatusCreated, api.NewAuthResponse(pair, s.opts.AccessTTL, u))
}

func (s *Server) login(c *gin.Context) {
	var req api.LoginRequest
	if !s.bind(c, &req) {
		return
	}
	u, pair, err := s.users.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c, req.ClientID))
	if err != nil {
		failWith(c, err)
		return
	}
	s.setRefreshCookie(c, pair)
	success(c, http.StatusOK, api.NewAuthResponse(pair, s.opts.AccessTTL, u))
}

func (s *Server) refresh(c *gin.Context) {
	var req api.RefreshRequest
	if !s.bindOptional(c, &req) {
		return
	}
	raw, err := c.Cookie(common.RefreshTokenCookieName)
	if err != nil || raw == "" {
		raw = req.RefreshToken
	}
	pair, err := s.users.Refresh(c.Request.Context(), raw, clientInfo(c, req.ClientID))
	if err != nil {
		failWith(c, err)
		return
	}
	s.setRefreshCookie(c, pair)
	success(c, http.StatusOK, api.NewAuthResponse(pair, s.opts.AccessTTL, nil))
}

func (s *Server) logout(c *gin.Context) {
	var req api.LogoutRequest
	if !s.bindOptional(c, &req) {
		return
	}
	var p *auth.Principal
	if found, ok := principal(c); ok {
		p = &found
	}
	if err := s.users.Logout(c.Request.Context(), req.JTI, p); err != nil {
		failWith(c, err)
		return
	}
	s.setRefreshCookie(c, nil)
	success(c, http.StatusOK, api.Empty{})
}

func (s *Server) logoutAll(c *gin.Context) {
	p, _ := principal(c)
	n, err := s.users.RevokeAll(c.Request.Context(), p.ID)
	if err != nil {
		failWith(c, err)
		return
	}
	s.setRefreshCookie(c, nil)
	success(c, http.StatusOK, api.RevokeAllResponse{Revoked: n})
}

func (s *Server) sessions(c *gin.Context) {
	p, _ := principal(c)
	records, err := s.users.Sessions(c.Request.Context(), p.ID)
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, api.NewSessionsResponse(records))
}

func (s *Server) me(c *gin.Context) {
	p, _ := principal(c)
	if p.Role == common.RoleService {
		success(c, http.StatusOK, api.User{ID: p.ID, Username: p.ID, Role: p.Role})
		return
	}
	u, err := s.users.Me(c.Request.Context(), p.ID)
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, api.NewUser(u))
}

func (s *Server) startPasswordReset(c *gin.Context) {
	var req api.StartPasswordResetRequest
	if !s.bind(c, &req) {
		return
	}
	if err := s.users.StartPasswordReset(c.Request.Context(), req.Email); err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusAccepted, api.Empty{})
}

func (s *Server) completePasswordReset(c *gin.Context) {
	var req api.CompletePasswordResetRequest
	if !s.bind(c, &req) {
		return
	}
	if err := s.users.CompletePasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, api.Empty{})
}
