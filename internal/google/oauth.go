package google

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	classroom "google.golang.org/api/classroom/v1"
	drive "google.golang.org/api/drive/v3"

	"github.com/nattapongd/classmate/internal/logging"
)

// scopes are the read-only permissions the assistant needs: course
// list, the student's own coursework, and Drive file content.
var scopes = []string{
	classroom.ClassroomCoursesReadonlyScope,
	classroom.ClassroomCourseworkMeReadonlyScope,
	drive.DriveReadonlyScope,
}

// Authorizer produces an authenticated HTTP client, running the
// interactive consent flow when no stored credential exists.
type Authorizer struct {
	store      *Store
	secretFile string
	in         io.Reader
	out        io.Writer
	logger     *slog.Logger
}

// NewAuthorizer creates an Authorizer. in and out carry the interactive
// consent prompt; they default to stdin/stdout when nil.
func NewAuthorizer(store *Store, secretFile string, in io.Reader, out io.Writer, logger *slog.Logger) *Authorizer {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Authorizer{
		store:      store,
		secretFile: secretFile,
		in:         in,
		out:        out,
		logger:     logging.WithService(logger, "google"),
	}
}

// Client returns an HTTP client that authenticates with the stored
// credential, refreshing access tokens transparently. If no credential
// is stored, the interactive consent flow runs first and its result is
// persisted. A failed consent flow is a hard error.
func (a *Authorizer) Client(ctx context.Context) (*http.Client, error) {
	conf, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}

	cred, ok := a.store.Load()
	if !ok {
		a.logger.Debug("no stored credential, starting consent flow", logging.Operation("authorize"))
		cred, err = a.consent(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := a.store.Save(cred); err != nil {
			return nil, err
		}
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.RefreshToken})
	return oauth2.NewClient(ctx, ts), nil
}

// Reauthorize runs the consent flow unconditionally and overwrites the
// stored credential.
func (a *Authorizer) Reauthorize(ctx context.Context) error {
	conf, err := a.oauthConfig()
	if err != nil {
		return err
	}

	cred, err := a.consent(ctx, conf)
	if err != nil {
		return err
	}

	return a.store.Save(cred)
}

// oauthConfig parses the vendor client-secret file into an OAuth2
// configuration with the fixed read-only scopes.
func (a *Authorizer) oauthConfig() (*oauth2.Config, error) {
	data, err := os.ReadFile(a.secretFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file %s: %w", a.secretFile, err)
	}

	conf, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file: %w", err)
	}

	return conf, nil
}

// consent prints the authorization URL, reads the code the user pastes
// back, and exchanges it for a credential.
func (a *Authorizer) consent(ctx context.Context, conf *oauth2.Config) (*Credential, error) {
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(a.out, "เปิดลิงก์นี้ในเบราว์เซอร์เพื่ออนุญาตการเข้าถึง:\n%s\n\nวางรหัสยืนยันที่ได้: ", authURL)

	scanner := bufio.NewScanner(a.in)
	if !scanner.Scan() {
		return nil, fmt.Errorf("failed to read authorization code")
	}
	code := strings.TrimSpace(scanner.Text())
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	a.logger.Debug("authorization complete", logging.Operation("authorize"), logging.Status(logging.StatusSuccess))

	return &Credential{
		Type:         "authorized_user",
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		RefreshToken: tok.RefreshToken,
	}, nil
}
