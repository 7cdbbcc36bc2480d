package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"dorm-rental/pkg/domain"

	"go.uber.org/zap"
)

type ProfileService struct {
	c *Client
}

type Registration struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}

// Register creates the account and keeps the returned token.
func (s *ProfileService) Register(ctx context.Context, reg Registration) Result[Session] {
	return s.storeSession(callJSON[Session](ctx, s.c, http.MethodPost, "/api/register", reg))
}

// Login keeps the returned token in the client's TokenStore.
func (s *ProfileService) Login(ctx context.Context, email, password string) Result[Session] {
	if strings.TrimSpace(email) == "" || password == "" {
		return invalid[Session]("Email and password are required.")
	}
	body := map[string]string{"email": strings.TrimSpace(email), "password": password}
	return s.storeSession(callJSON[Session](ctx, s.c, http.MethodPost, "/api/login", body))
}

func (s *ProfileService) storeSession(res Result[Session]) Result[Session] {
	if res.Success && res.Data.Token != "" {
		if err := s.c.tokens.SetToken(res.Data.Token); err != nil {
			s.c.log.Warn("Failed to persist token", zap.Error(err))
		}
	}
	return res
}

// Logout revokes the session and forgets the token even if the server
// could not be reached.
func (s *ProfileService) Logout(ctx context.Context) Result[struct{}] {
	res := callJSON[struct{}](ctx, s.c, http.MethodPost, "/api/logout", nil)
	if err := s.c.tokens.SetToken(""); err != nil {
		s.c.log.Warn("Failed to clear token", zap.Error(err))
	}
	return res
}

func (s *ProfileService) Me(ctx context.Context) Result[Profile] {
	return get[Profile](ctx, s.c, "/me", nil)
}

type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (s *ProfileService) UpdateMe(ctx context.Context, u ProfileUpdate) Result[Profile] {
	return callJSON[Profile](ctx, s.c, http.MethodPut, "/me", u)
}

func (s *ProfileService) ChangePassword(ctx context.Context, current, next string) Result[struct{}] {
	if current == "" || next == "" {
		return invalid[struct{}]("Current and new password are required.")
	}
	body := map[string]string{"current_password": current, "new_password": next}
	return callJSON[struct{}](ctx, s.c, http.MethodPut, "/me/password", body)
}

func (s *ProfileService) MyVerification(ctx context.Context) Result[MyVerification] {
	return get[MyVerification](ctx, s.c, "/landlord/my-verification", nil)
}

// ResubmitVerification is allowed only when the current status is
// not_submitted or rejected.
func (s *ProfileService) ResubmitVerification(ctx context.Context, current domain.VerificationStatus, idType string, front, back File) Result[Verification] {
	if !domain.CanResubmit(current) {
		return invalid[Verification](fmt.Sprintf("cannot resubmit verification while it is %s", current))
	}
	idType = strings.TrimSpace(idType)
	if !slices.Contains(domain.IDTypes, idType) {
		return invalid[Verification]("id_type: select a valid ID type")
	}
	if front.Content == nil || back.Content == nil {
		return invalid[Verification]("Upload both the front and back of your ID.")
	}

	front.Field = "id_front"
	back.Field = "id_back"
	req, err := multipartRequest("/landlord/resubmit-verification", "", url.Values{"id_type": {idType}}, []File{front, back})
	if err != nil {
		return fail[Verification](KindUnknown, 0, err.Error())
	}
	return call[Verification](ctx, s.c, req)
}
