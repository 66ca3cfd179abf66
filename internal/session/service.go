package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// Service implements the auth operations against the users endpoints. Each
// operation is a single request/response unit with defined effects on the
// [Store]; no other component writes the session identity.
type Service struct {
	client *api.Client
	store  *Store
	logger *log.Logger
}

// NewService creates a Service bound to the given transport and store.
func NewService(client *api.Client, store *Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &Service{client: client, store: store, logger: logger}
}

// Store exposes the session cell for read access and watching.
func (s *Service) Store() *Store {
	return s.store
}

// RegisterInput carries the register form.
type RegisterInput struct {
	FullName string
	Email    string
	Username string
	Password string
	// Avatar is required by the server; cover image is optional.
	Avatar     *api.FileUpload
	CoverImage *api.FileUpload
}

func (in RegisterInput) validate() error {
	switch {
	case in.FullName == "":
		return api.ValidationError("full name is required")
	case in.Email == "":
		return api.ValidationError("email is required")
	case in.Username == "":
		return api.ValidationError("username is required")
	case in.Password == "":
		return api.ValidationError("password is required")
	case in.Avatar == nil:
		return api.ValidationError("avatar image is required")
	}
	return nil
}

// Register creates an account. Registration does not authenticate: the
// server requires a separate login, so the session identity is left unset
// on success. On failure the normalized error is recorded and the identity
// is unchanged.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s.store.begin()

	fields := map[string]string{
		"fullName": in.FullName,
		"email":    in.Email,
		"username": in.Username,
		"password": in.Password,
	}
	files := []api.FileUpload{*in.Avatar}
	if in.CoverImage != nil {
		files = append(files, *in.CoverImage)
	}

	var user models.User
	if err := s.client.PostMultipart(ctx, "/api/v1/users/register", fields, files, &user); err != nil {
		s.store.fail(api.AsError(err))
		return nil, err
	}

	s.logger.Info("account registered", "username", user.Username)
	s.store.mutate(func(st *State) { st.Loading = false })
	return &user, nil
}

// loginRequest is the login body. The identifier is sent as an email field
// when it contains '@', otherwise as a username field.
type loginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type loginResponse struct {
	User models.User `json:"user"`
}

// Login establishes a session. On success the identity is replaced
// wholesale and the last error cleared; on failure the identity is left
// unchanged.
func (s *Service) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, api.ValidationError("identifier and password are required")
	}

	s.store.begin()

	payload := loginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		payload.Email = identifier
	} else {
		payload.Username = identifier
	}

	var resp loginResponse
	if err := s.client.Post(ctx, "/api/v1/users/login", payload, &resp); err != nil {
		s.store.fail(api.AsError(err))
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	s.logger.Info("logged in", "username", resp.User.Username)
	s.store.setIdentity(&resp.User)
	return &resp.User, nil
}

// Logout invalidates the server session. The local identity is cleared
// unconditionally: logging out is a client-state guarantee, not contingent
// on the network call. A server-side failure is still recorded.
func (s *Service) Logout(ctx context.Context) error {
	s.store.begin()

	err := s.client.Post(ctx, "/api/v1/users/logout", nil, nil)
	if err != nil {
		s.logger.Warn("server logout failed, clearing local session anyway", "err", err)
		s.store.mutate(func(st *State) {
			st.Loading = false
			st.Identity = nil
			st.LastError = api.AsError(err)
		})
		return err
	}

	s.logger.Info("logged out")
	s.store.setIdentity(nil)
	return nil
}

// RefreshToken rotates the session cookie. It is side-effect only: the
// identity is never altered here. A failed refresh attempt is not the same
// as an invalid session; only an authorization failure observed by the
// coordinator clears the identity.
func (s *Service) RefreshToken(ctx context.Context) error {
	s.store.setRefreshing(true)
	defer s.store.setRefreshing(false)

	if err := s.client.Post(ctx, "/api/v1/users/refresh-token", nil, nil); err != nil {
		s.logger.Warn("token refresh failed", "err", err)
		return fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}

	s.logger.Debug("token refreshed")
	return nil
}

// CurrentUser resolves the identity from the existing session cookie. On
// success the identity is set; on failure it is cleared. Either way the
// store ends up initialized, so the UI never blocks on an ambiguous session.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	s.store.begin()

	var user models.User
	if err := s.client.Get(ctx, "/api/v1/users/current-user", &user); err != nil {
		s.store.mutate(func(st *State) {
			st.Loading = false
			st.Identity = nil
			st.Initialized = true
			st.LastError = api.AsError(err)
		})
		return nil, err
	}

	s.store.mutate(func(st *State) {
		st.Loading = false
		st.Identity = &user
		st.Initialized = true
		st.LastError = nil
	})
	return &user, nil
}

// UpdateAccount patches the account's full name and email. This is one of
// the explicitly-defined account-update operations allowed to field-patch
// the identity.
func (s *Service) UpdateAccount(ctx context.Context, fullName, email string) (*models.User, error) {
	if fullName == "" && email == "" {
		return nil, api.ValidationError("nothing to update")
	}

	s.store.begin()

	payload := map[string]string{}
	if fullName != "" {
		payload["fullName"] = fullName
	}
	if email != "" {
		payload["email"] = email
	}

	var user models.User
	if err := s.client.Patch(ctx, "/api/v1/users/update-account", payload, &user); err != nil {
		s.store.fail(api.AsError(err))
		return nil, err
	}

	s.store.patchIdentity(func(identity *models.User) {
		identity.FullName = user.FullName
		identity.Email = user.Email
	})
	return &user, nil
}

// UpdateAvatar replaces the account avatar image.
func (s *Service) UpdateAvatar(ctx context.Context, avatar api.FileUpload) (*models.User, error) {
	s.store.begin()

	var user models.User
	if err := s.client.PatchMultipart(ctx, "/api/v1/users/avatar", nil, []api.FileUpload{avatar}, &user); err != nil {
		s.store.fail(api.AsError(err))
		return nil, err
	}

	s.store.patchIdentity(func(identity *models.User) {
		identity.Avatar = user.Avatar
	})
	return &user, nil
}

// WatchHistory fetches the videos the current user has watched.
func (s *Service) WatchHistory(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := s.client.Get(ctx, "/api/v1/users/history", &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
