// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/services"
)

// MockTeacherAPI is a configurable test double for [services.TeacherAPI].
// Unset function fields return zero values.
type MockTeacherAPI struct {
	RegisterFn     func(ctx context.Context, payload services.RegisterPayload) (*services.AuthResult, error)
	LoginFn        func(ctx context.Context, creds services.Credentials) (*services.AuthResult, error)
	ProfileFn      func(ctx context.Context) (*models.Teacher, error)
	CreateCourseFn func(ctx context.Context, form services.CourseForm) error
}

func (m *MockTeacherAPI) Register(ctx context.Context, payload services.RegisterPayload) (*services.AuthResult, error) {
	if m.RegisterFn == nil {
		return &services.AuthResult{}, nil
	}
	return m.RegisterFn(ctx, payload)
}

func (m *MockTeacherAPI) Login(ctx context.Context, creds services.Credentials) (*services.AuthResult, error) {
	if m.LoginFn == nil {
		return &services.AuthResult{}, nil
	}
	return m.LoginFn(ctx, creds)
}

func (m *MockTeacherAPI) Profile(ctx context.Context) (*models.Teacher, error) {
	if m.ProfileFn == nil {
		return &models.Teacher{}, nil
	}
	return m.ProfileFn(ctx)
}

func (m *MockTeacherAPI) CreateCourse(ctx context.Context, form services.CourseForm) error {
	if m.CreateCourseFn == nil {
		return nil
	}
	return m.CreateCourseFn(ctx, form)
}

// MockPlaylistAPI is a configurable test double for [services.PlaylistAPI].
type MockPlaylistAPI struct {
	FetchAllFn       func(ctx context.Context) ([]models.Playlist, error)
	FetchByIDFn      func(ctx context.Context, playlistID string) (*models.Playlist, error)
	FetchByTeacherFn func(ctx context.Context, teacherID string) ([]models.Playlist, error)
	DeleteFn         func(ctx context.Context, playlistID string) error
}

func (m *MockPlaylistAPI) FetchAll(ctx context.Context) ([]models.Playlist, error) {
	if m.FetchAllFn == nil {
		return nil, nil
	}
	return m.FetchAllFn(ctx)
}

func (m *MockPlaylistAPI) FetchByID(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if m.FetchByIDFn == nil {
		return &models.Playlist{ID: playlistID}, nil
	}
	return m.FetchByIDFn(ctx, playlistID)
}

func (m *MockPlaylistAPI) FetchByTeacher(ctx context.Context, teacherID string) ([]models.Playlist, error) {
	if m.FetchByTeacherFn == nil {
		return nil, nil
	}
	return m.FetchByTeacherFn(ctx, teacherID)
}

func (m *MockPlaylistAPI) Delete(ctx context.Context, playlistID string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, playlistID)
}

// MockVideoAPI is a configurable test double for [services.VideoAPI].
type MockVideoAPI struct {
	AddFn    func(ctx context.Context, playlistID string, form services.VideoForm) (*models.Video, error)
	UpdateFn func(ctx context.Context, videoID string, update services.VideoUpdate) (*models.Video, error)
	DeleteFn func(ctx context.Context, videoID string) error
}

func (m *MockVideoAPI) Add(ctx context.Context, playlistID string, form services.VideoForm) (*models.Video, error) {
	if m.AddFn == nil {
		return &models.Video{Title: form.Title}, nil
	}
	return m.AddFn(ctx, playlistID, form)
}

func (m *MockVideoAPI) Update(ctx context.Context, videoID string, update services.VideoUpdate) (*models.Video, error) {
	if m.UpdateFn == nil {
		return &models.Video{ID: videoID}, nil
	}
	return m.UpdateFn(ctx, videoID, update)
}

func (m *MockVideoAPI) Delete(ctx context.Context, videoID string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(ctx, videoID)
}

// MemoryTokens is an in-memory token store for session tests.
type MemoryTokens struct {
	Value  string
	SetErr error
}

func (m *MemoryTokens) Token() (string, error) { return m.Value, nil }

func (m *MemoryTokens) SetToken(token string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Value = token
	return nil
}

func (m *MemoryTokens) ClearToken() error {
	m.Value = ""
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
