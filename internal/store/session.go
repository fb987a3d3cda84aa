package store

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"golang.org/x/oauth2"
)

// TokenStore is the durable storage slot holding the session token across
// process restarts. Semantics are a single-slot register: last write wins.
type TokenStore interface {
	Token() (string, error) // current token, "" when absent
	SetToken(token string) error
	ClearToken() error
}

// SessionState is a point-in-time snapshot of the session store.
type SessionState struct {
	Teacher *models.Teacher
	Token   string
	Lifecycle
}

// Session holds the authenticated teacher and session token.
//
// Login and Logout are the only operations that touch durable storage.
type Session struct {
	tracker
	teacher *models.Teacher
	token   string

	svc    services.TeacherAPI
	client *api.Client
	tokens TokenStore
	logger *log.Logger
}

// NewSession creates a session store over the teacher service. When a
// durable token store is provided, a surviving token seeds the session so
// protected calls work immediately after a restart.
func NewSession(svc services.TeacherAPI, client *api.Client, tokens TokenStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	s := &Session{svc: svc, client: client, tokens: tokens, logger: logger}

	if tokens != nil {
		tok, err := tokens.Token()
		if err != nil {
			logger.Warn("failed to read stored session token", "error", err)
		} else if tok != "" {
			s.token = tok
			s.installToken(tok)
		}
	}

	return s
}

// State returns a snapshot of the current session.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{Token: s.token, Lifecycle: s.life}
	if s.teacher != nil {
		t := *s.teacher
		state.Teacher = &t
	}
	return state
}

// Authenticated reports whether a session token is present.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Register submits a registration payload. On success the session adopts
// the returned teacher and token. The token is not persisted; only Login
// writes durable storage.
func (s *Session) Register(ctx context.Context, payload services.RegisterPayload) error {
	req := s.beginFresh()

	result, err := s.svc.Register(ctx, payload)
	if err != nil {
		s.resolve(ctx, req, err, nil)
		return err
	}

	s.resolve(ctx, req, nil, func() {
		teacher := result.Teacher
		s.teacher = &teacher
		s.token = result.Token
		s.life.Success = true
	})
	s.installToken(result.Token)

	return nil
}

// Login exchanges credentials for a session. On success the token is
// persisted to durable storage and installed on the HTTP adapter.
func (s *Session) Login(ctx context.Context, creds services.Credentials) error {
	req := s.beginFresh()

	result, err := s.svc.Login(ctx, creds)
	if err != nil {
		s.resolve(ctx, req, err, nil)
		return err
	}

	s.resolve(ctx, req, nil, func() {
		teacher := result.Teacher
		s.teacher = &teacher
		s.token = result.Token
		s.life.Success = true
	})
	s.installToken(result.Token)

	if s.tokens != nil {
		if err := s.tokens.SetToken(result.Token); err != nil {
			s.logger.Warn("failed to persist session token", "error", err)
		}
	}

	return nil
}

// Profile fetches the authenticated teacher and replaces the session's
// teacher record wholesale, nested playlists included. Without a token it
// fails locally, no network call is made.
func (s *Session) Profile(ctx context.Context) error {
	if !s.Authenticated() {
		err := &api.Error{
			Kind:    api.KindAuthorization,
			Message: "Failed to fetch profile",
			Err:     shared.ErrTokenMissing,
		}
		req := s.begin()
		s.resolve(ctx, req, err, nil)
		return err
	}

	req := s.begin()

	teacher, err := s.svc.Profile(ctx)
	if err != nil {
		s.resolve(ctx, req, err, nil)
		return err
	}

	s.resolve(ctx, req, nil, func() {
		s.teacher = teacher
	})

	return nil
}

// CreateCourse submits a new course playlist. Success does not mutate the
// teacher record or any playlist collection; callers refetch the lists
// they care about.
func (s *Session) CreateCourse(ctx context.Context, form services.CourseForm) error {
	req := s.begin()

	if err := s.svc.CreateCourse(ctx, form); err != nil {
		s.resolve(ctx, req, err, nil)
		return err
	}

	s.resolve(ctx, req, nil, nil)
	return nil
}

// Logout unconditionally clears the session: teacher, token, durable
// storage, and success flag. It cannot fail; storage errors are logged.
func (s *Session) Logout() {
	s.mu.Lock()
	s.teacher = nil
	s.token = ""
	s.life.Success = false
	s.mu.Unlock()

	if s.client != nil {
		s.client.ClearTokenSource()
	}

	if s.tokens != nil {
		if err := s.tokens.ClearToken(); err != nil {
			s.logger.Warn("failed to clear stored session token", "error", err)
		}
	}
}

// installToken points the HTTP adapter at the current bearer token.
func (s *Session) installToken(token string) {
	if s.client == nil || token == "" {
		return
	}
	s.client.SetTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}
