// Teacher/auth endpoints of the dashboard API.
package services

import (
	"context"

	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/models"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload is the full registration request body. ProfilePicture is
// a hosted image URL obtained out-of-band via [UploadService].
type RegisterPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	GoogleAccount   string `json:"googleAccount,omitempty"`
	GithubAccount   string `json:"githubAccount,omitempty"`
	LinkedinAccount string `json:"linkedinAccount,omitempty"`
	Qualification   string `json:"qualification"`
	Experience      string `json:"experience"`
	Subject         string `json:"subject"`
	ProfilePicture  string `json:"profilePicture,omitempty"`
}

// AuthResult is the login/register response: the teacher record with the
// session token alongside at top level.
type AuthResult struct {
	models.Teacher
	Token string `json:"token"`
}

// CourseForm is the multipart payload for course creation.
type CourseForm struct {
	Title       string
	Description string
	CoverImage  *FilePart
}

// TeacherService implements [TeacherAPI] against /teachers endpoints.
type TeacherService struct {
	client *api.Client
}

var _ TeacherAPI = (*TeacherService)(nil)

// NewTeacherService creates a teacher service over the given adapter.
func NewTeacherService(client *api.Client) *TeacherService {
	return &TeacherService{client: client}
}

// Register submits the registration payload. POST /teachers/register.
func (t *TeacherService) Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error) {
	var result AuthResult
	opts := api.Options{Fallback: "Registration failed"}
	if err := t.client.Post(ctx, "/teachers/register", payload, opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login exchanges credentials for a teacher record and token. POST /teachers/login.
func (t *TeacherService) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	opts := api.Options{Fallback: "Login failed"}
	if err := t.client.Post(ctx, "/teachers/login", creds, opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile fetches the authenticated teacher. GET /teachers/getTeacher.
func (t *TeacherService) Profile(ctx context.Context) (*models.Teacher, error) {
	var teacher models.Teacher
	opts := api.Options{Auth: true, Fallback: "Failed to fetch profile"}
	if err := t.client.Get(ctx, "/teachers/getTeacher", opts, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// CreateCourse submits a new course playlist. POST /teachers/course (multipart).
//
// The created playlist is not returned to callers; the server response is
// discarded and interested callers refetch their playlist lists.
func (t *TeacherService) CreateCourse(ctx context.Context, form CourseForm) error {
	body := api.NewForm()
	body.Set("title", form.Title)
	body.Set("description", form.Description)
	if form.CoverImage != nil {
		body.AddFile("coverImage", form.CoverImage.Filename, form.CoverImage.Data)
	}

	opts := api.Options{Auth: true, Fallback: "Course creation failed"}
	return t.client.PostMultipart(ctx, "/teachers/course", body, opts, nil)
}
