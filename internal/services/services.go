// package services defines typed clients for the dashboard REST API
//
// Teachers, playlists, videos; plus the out-of-band image upload host.
package services

import (
	"context"

	"github.com/praslea/lectern/internal/models"
)

// TeacherAPI is the teacher/auth surface consumed by the session store.
type TeacherAPI interface {
	// Register submits a full registration payload and returns the created
	// teacher together with a session token.
	Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error)

	// Login exchanges email+password for the teacher record and a token.
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)

	// Profile fetches the authenticated teacher, including nested playlists.
	Profile(ctx context.Context) (*models.Teacher, error)

	// CreateCourse submits a new course playlist as a multipart form.
	CreateCourse(ctx context.Context, form CourseForm) error
}

// PlaylistAPI is the playlist surface consumed by the playlist store.
type PlaylistAPI interface {
	FetchAll(ctx context.Context) ([]models.Playlist, error)
	FetchByID(ctx context.Context, playlistID string) (*models.Playlist, error)
	FetchByTeacher(ctx context.Context, teacherID string) ([]models.Playlist, error)
	Delete(ctx context.Context, playlistID string) error
}

// VideoAPI is the video surface consumed by the video store.
type VideoAPI interface {
	// Add uploads a video into the playlist identified by playlistID and
	// returns the stored entity.
	Add(ctx context.Context, playlistID string, form VideoForm) (*models.Video, error)

	// Update replaces a video's metadata and returns the updated entity.
	Update(ctx context.Context, videoID string, update VideoUpdate) (*models.Video, error)

	Delete(ctx context.Context, videoID string) error
}

// FilePart is a named file attached to a multipart submission.
type FilePart struct {
	Filename string
	Data     []byte
}
