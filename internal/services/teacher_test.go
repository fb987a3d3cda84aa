package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praslea/lectern/internal/api"
)

func TestTeacherService(t *testing.T) {
	ctx := context.Background()

	newService := func(handler http.HandlerFunc) (*TeacherService, *httptest.Server) {
		server := httptest.NewServer(handler)
		client := api.NewClient(server.URL, nil, 0, nil)
		return NewTeacherService(client), server
	}

	t.Run("Register", func(t *testing.T) {
		t.Run("posts the full payload and returns teacher with token", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/teachers/register" {
					t.Errorf("expected /teachers/register, got %s", r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}

				var got map[string]any
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Fatalf("failed to decode request body: %v", err)
				}
				if got["name"] != "Ada" || got["qualification"] != "PhD" {
					t.Errorf("unexpected payload: %+v", got)
				}
				if _, present := got["googleAccount"]; present {
					t.Error("expected empty social fields omitted")
				}

				w.Write([]byte(`{"_id": "1", "name": "Ada", "token": "abc"}`))
			})
			defer server.Close()

			result, err := svc.Register(ctx, RegisterPayload{
				Name:          "Ada",
				Email:         "ada@example.com",
				Password:      "pw",
				Qualification: "PhD",
				Experience:    "10 years",
				Subject:       "Math",
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.ID != "1" || result.Token != "abc" {
				t.Errorf("expected teacher 1 with token abc, got %+v", result)
			}
		})

		t.Run("surfaces the registration fallback", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})
			defer server.Close()

			_, err := svc.Register(ctx, RegisterPayload{})
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *api.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.Error, got %T", err)
			}
			if apiErr.Message != "Registration failed" {
				t.Errorf("expected 'Registration failed', got %q", apiErr.Message)
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("posts credentials and returns teacher with token", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/teachers/login" {
					t.Errorf("expected /teachers/login, got %s", r.URL.Path)
				}

				var creds Credentials
				if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
					t.Fatalf("failed to decode credentials: %v", err)
				}
				if creds.Email != "ada@example.com" {
					t.Errorf("expected email in body, got %q", creds.Email)
				}

				w.Write([]byte(`{"_id": "1", "name": "Ada", "email": "ada@example.com", "token": "abc"}`))
			})
			defer server.Close()

			result, err := svc.Login(ctx, Credentials{Email: "ada@example.com", Password: "pw"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.ID != "1" {
				t.Errorf("expected teacher id 1, got %q", result.ID)
			}
			if result.Token != "abc" {
				t.Errorf("expected token abc, got %q", result.Token)
			}
		})

		t.Run("surfaces the login fallback", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})
			defer server.Close()

			_, err := svc.Login(ctx, Credentials{})
			var apiErr *api.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.Error, got %T", err)
			}
			if apiErr.Message != "Login failed" {
				t.Errorf("expected 'Login failed', got %q", apiErr.Message)
			}
			if apiErr.Kind != api.KindAuthorization {
				t.Errorf("expected authorization kind, got %v", apiErr.Kind)
			}
		})
	})

	t.Run("Profile", func(t *testing.T) {
		t.Run("fetches the teacher with nested playlists", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/teachers/getTeacher" {
					t.Errorf("expected /teachers/getTeacher, got %s", r.URL.Path)
				}
				w.Write([]byte(`{"_id": "1", "name": "Ada", "playlists": [{"_id": "p1", "title": "Algebra"}]}`))
			})
			defer server.Close()

			teacher, err := svc.Profile(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if teacher.ID != "1" {
				t.Errorf("expected teacher 1, got %q", teacher.ID)
			}
			if len(teacher.Playlists) != 1 || teacher.Playlists[0].ID != "p1" {
				t.Errorf("expected nested playlists, got %+v", teacher.Playlists)
			}
		})
	})

	t.Run("CreateCourse", func(t *testing.T) {
		t.Run("posts multipart fields and discards the response body", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/teachers/course" {
					t.Errorf("expected /teachers/course, got %s", r.URL.Path)
				}
				if err := r.ParseMultipartForm(1 << 20); err != nil {
					t.Fatalf("failed to parse form: %v", err)
				}
				if got := r.FormValue("title"); got != "Calculus" {
					t.Errorf("expected title field, got %q", got)
				}
				if _, _, err := r.FormFile("coverImage"); err != nil {
					t.Errorf("expected coverImage file: %v", err)
				}
				w.Write([]byte(`{"playlist": {"_id": "p9"}}`))
			})
			defer server.Close()

			err := svc.CreateCourse(ctx, CourseForm{
				Title:       "Calculus",
				Description: "Derivatives and integrals",
				CoverImage:  &FilePart{Filename: "cover.png", Data: []byte("png")},
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("surfaces the course creation fallback", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			})
			defer server.Close()

			err := svc.CreateCourse(ctx, CourseForm{Title: "x"})
			var apiErr *api.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.Error, got %T", err)
			}
			if apiErr.Message != "Course creation failed" {
				t.Errorf("expected 'Course creation failed', got %q", apiErr.Message)
			}
		})
	})
}
