package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates a new teacher account. When a profile picture path is
// given, the image is uploaded to the image host first and the hosted URL is
// sent with the registration payload.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	payload := services.RegisterPayload{
		Name:            cmd.String("name"),
		Email:           cmd.String("email"),
		Password:        cmd.String("password"),
		Qualification:   cmd.String("qualification"),
		Experience:      cmd.String("experience"),
		Subject:         cmd.String("subject"),
		GoogleAccount:   cmd.String("google"),
		GithubAccount:   cmd.String("github"),
		LinkedinAccount: cmd.String("linkedin"),
	}

	if picturePath := cmd.String("picture"); picturePath != "" {
		data, err := shared.VerifyAndReadFile(picturePath)
		if err != nil {
			return err
		}

		r.logger.Info("uploading profile picture", "path", picturePath)
		url, err := r.uploads.UploadImage(ctx, filepath.Base(picturePath), data)
		if err != nil {
			return fmt.Errorf("profile picture upload failed: %w", err)
		}
		payload.ProfilePicture = url
	}

	r.logger.Info("registering account", "email", payload.Email)

	if err := r.session.Register(ctx, payload); err != nil {
		return err
	}

	state := r.session.State()
	r.writePlain("✓ Account created: %s\n", state.Teacher.Name)
	r.writePlain("Run 'lectern auth login' to persist your session.\n")
	return nil
}

// AuthLogin exchanges credentials for a session token. The token is stored
// durably so later invocations stay authenticated.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	creds := services.Credentials{
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	r.logger.Info("logging in", "email", creds.Email)

	if err := r.session.Login(ctx, creds); err != nil {
		return err
	}

	state := r.session.State()
	r.writePlain("✓ Logged in as %s\n", state.Teacher.Name)
	return nil
}

// AuthLogout clears the in-memory session and the stored token.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.session.Logout()
	r.logger.Info("session cleared")
	return r.writePlain("✓ Logged out\n")
}

// AuthWhoami fetches and prints the authenticated teacher profile.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.session.Profile(ctx); err != nil {
		return err
	}

	teacher := r.session.State().Teacher

	if cmd.Bool("json") {
		return r.writeJSON(teacher, cmd.Bool("pretty"))
	}

	r.writePlainHeader(teacher.Name)
	r.writePlain("Email: %s\n", teacher.Email)
	r.writePlain("Subject: %s\n", teacher.Subject)
	r.writePlain("Qualification: %s\n", teacher.Qualification)
	r.writePlain("Experience: %s\n", teacher.Experience)
	r.writePlain("Playlists: %d\n", len(teacher.Playlists))
	return nil
}
