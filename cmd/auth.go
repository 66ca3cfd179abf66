package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/session"
	"github.com/videotube/vtx/internal/shared"
)

// openUpload opens a local file as a multipart upload part.
func openUpload(field, path string) (*api.FileUpload, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	upload := &api.FileUpload{FieldName: field, FileName: filepath.Base(path), Content: f}
	return upload, func() { f.Close() }, nil
}

// AuthRegister creates a new account. The account is not signed in afterwards.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	avatar, closeAvatar, err := openUpload("avatar", cmd.String("avatar"))
	if err != nil {
		return err
	}
	defer closeAvatar()

	in := session.RegisterInput{
		FullName: cmd.String("name"),
		Email:    cmd.String("email"),
		Username: cmd.String("username"),
		Password: cmd.String("password"),
		Avatar:   avatar,
	}

	if coverPath := cmd.String("cover"); coverPath != "" {
		cover, closeCover, err := openUpload("coverImage", coverPath)
		if err != nil {
			return err
		}
		defer closeCover()
		in.CoverImage = cover
	}

	user, err := r.svc.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	r.writePlain("✓ Account created: @%s\n", user.Username)
	return r.writePlain("Sign in with 'vtx auth login %s --password ...'\n", user.Username)
}

// AuthLogin signs in with a username or email identifier.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	identifier := cmd.StringArg("identifier")
	if identifier == "" {
		return fmt.Errorf("%w: identifier (username or email)", shared.ErrMissingArgument)
	}

	user, err := r.svc.Login(ctx, identifier, cmd.String("password"))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Signed in as @%s\n", user.Username)
}

// AuthLogout invalidates the server session. The local session is cleared
// even when the server call fails.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.svc.Logout(ctx); err != nil {
		r.writePlain("Signed out locally; server logout failed: %v\n", err)
		return nil
	}
	return r.writePlain("✓ Signed out\n")
}

// AuthWhoami resolves and prints the signed-in account.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.resolveSession(ctx); err != nil {
		return err
	}

	state := r.svc.Store().State()
	if !state.Authenticated() {
		return r.writePlain("✗ Not signed in\n")
	}

	if cmd.Bool("json") {
		return r.writeJSON(state.Identity, true)
	}

	r.writePlain("✓ Signed in\n")
	r.writePlain("Username: @%s\n", state.Identity.Username)
	r.writePlain("Name: %s\n", state.Identity.FullName)
	return r.writePlain("Email: %s\n", state.Identity.Email)
}

// AuthRefresh rotates the session tokens once.
func (r *Runner) AuthRefresh(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if err := r.svc.RefreshToken(ctx); err != nil {
		return err
	}
	return r.writePlain("✓ Session refreshed\n")
}

// AuthUpdate patches the account's full name or email.
func (r *Runner) AuthUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	user, err := r.svc.UpdateAccount(ctx, cmd.String("name"), cmd.String("email"))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Account updated: %s <%s>\n", user.FullName, user.Email)
}

// AuthHistory prints the account's watch history.
func (r *Runner) AuthHistory(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	videos, err := r.svc.WatchHistory(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, true)
	}

	if len(videos) == 0 {
		return r.writePlain("No watch history\n")
	}
	for i, v := range videos {
		r.writePlain("%d. %s [%s]\n", i+1, v.Title, shared.FormatDuration(v.Duration))
	}
	return nil
}
