package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/docopt/docopt-go"
	"github.com/joho/godotenv"

	"github.com/s21platform/family-web/internal/client/familyapi"
	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/pkg/validator"
	"github.com/s21platform/family-web/internal/repository/sqlite"
	"github.com/s21platform/family-web/internal/service"
	"github.com/s21platform/family-web/internal/session"
)

const familyctlVersion = "0.1.0"

const usage = `Family control.

Usage:
    familyctl login [--email=<email>] [--password=<password>]
    familyctl register --first=<first> --last=<last> --email=<email>
    familyctl accept-invite <invite_token> [--first=<first>] [--last=<last>]
    familyctl logout
    familyctl whoami
    familyctl families
    familyctl tree <family_id> [--depth=<depth>]
    familyctl events <family_id>
    familyctl rsvp <event_id> (going | not-going | maybe) [--family=<family_id>]
    familyctl messages <family_id>
    familyctl send <family_id> <message>
    familyctl chat <family_id>
    familyctl admin-members <family_id>

Options:
    -h --help              Show this screen.
    --version              Show version.
    --email=<email>        Account email.
    --password=<password>  Account password. Prompted when omitted.
    --first=<first>        First name.
    --last=<last>          Last name.
    --depth=<depth>        Deepest generation to print.
    --family=<family_id>   Show the whole event list of the family after answering.`

var (
	Out *log.Logger
	Err *log.Logger
)

func init() {
	Out = log.New(os.Stdout, "", 0)
	Err = log.New(os.Stderr, "", log.Ldate|log.Ltime)
}

type app struct {
	cfg      *config.Config
	sessions *session.Provider
	service  *service.Service
	logger   *cliLogger
}

type command func(ctx context.Context, a *app, opts docopt.Opts) error

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], familyctlVersion)
	if err != nil {
		Err.Printf("%v", err)
		return 2
	}

	// a missing .env is fine; the environment may already be set
	_ = godotenv.Load()
	cfg := config.MustLoad()

	storage, err := sqlite.Open(cfg.Local.StoragePath)
	if err != nil {
		Err.Printf("%v", err)
		return 1
	}
	defer storage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := session.New(storage)
	if err := sessions.Hydrate(ctx); err != nil {
		Err.Printf("%v", err)
		return 1
	}

	client := familyapi.New(cfg)
	defer client.Close()

	logger := &cliLogger{out: Err}
	a := &app{
		cfg:      cfg,
		sessions: sessions,
		logger:   logger,
		service: service.New(client, validator.New(), logger,
			service.WithSignInTimeout(cfg.FamilyAPI.SignInTimeout),
			service.WithMaxDepth(cfg.Tree.MaxDepth),
		),
	}

	commands := []struct {
		name string
		run  command
	}{
		{"login", login},
		{"register", register},
		{"accept-invite", acceptInvite},
		{"logout", logout},
		{"whoami", whoami},
		{"families", families},
		{"tree", familyTree},
		{"events", events},
		{"rsvp", rsvp},
		{"messages", messages},
		{"send", send},
		{"chat", chat},
		{"admin-members", adminMembers},
	}
	for _, c := range commands {
		if selected, _ := opts.Bool(c.name); selected {
			if err := c.run(ctx, a, opts); err != nil {
				a.fail(ctx, err)
				return 1
			}
			return 0
		}
	}
	return 2
}

// fail prints the message a user should see. A rejected credential signs the
// user out so the next command asks for a fresh sign in.
func (a *app) fail(ctx context.Context, err error) {
	var apiErr *familyapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		_ = a.sessions.Clear(ctx)
	}
	Err.Printf("%s", familyapi.UserMessage(err))
}

type cliLogger struct {
	out *log.Logger
}

func (l *cliLogger) Info(msg string)  {}
func (l *cliLogger) Warn(msg string)  { l.out.Printf("warn: %s", msg) }
func (l *cliLogger) Error(msg string) { l.out.Printf("error: %s", msg) }

func optString(opts docopt.Opts, key string) string {
	if v, ok := opts[key].(string); ok {
		return v
	}
	return ""
}

func familyID(opts docopt.Opts) string {
	return optString(opts, "<family_id>")
}
