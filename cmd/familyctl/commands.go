package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/docopt/docopt-go"
	"golang.org/x/term"

	"github.com/s21platform/family-web/internal/event"
	"github.com/s21platform/family-web/internal/model"
	"github.com/s21platform/family-web/internal/pkg/jwt"
	"github.com/s21platform/family-web/internal/session"
)

var errSignedOut = errors.New("not signed in, run familyctl login first")

func prompt(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return string(b), nil
}

func promptNewPassword() (string, string, error) {
	password, err := prompt("Password")
	if err != nil {
		return "", "", err
	}
	confirm, err := prompt("Confirm password")
	if err != nil {
		return "", "", err
	}
	return password, confirm, nil
}

// current returns the stored session, dropping it once the upstream
// credential has expired.
func (a *app) current(ctx context.Context) (model.Session, error) {
	s, err := a.sessions.Get()
	if errors.Is(err, session.ErrSignedOut) {
		return model.Session{}, errSignedOut
	}
	if err != nil {
		return model.Session{}, err
	}
	if jwt.CredentialExpired(s.Token, time.Now()) {
		if err := a.sessions.Clear(ctx); err != nil {
			return model.Session{}, err
		}
		return model.Session{}, errors.New("session expired, run familyctl login again")
	}
	return s, nil
}

func (a *app) signedIn(ctx context.Context, s *model.Session) error {
	if err := a.sessions.Set(ctx, *s); err != nil {
		return err
	}
	Out.Printf("signed in as %s %s <%s>", s.User.FirstName, s.User.LastName, s.User.Email)
	return nil
}

func login(ctx context.Context, a *app, opts docopt.Opts) error {
	email := optString(opts, "--email")
	if email == "" {
		fmt.Fprint(os.Stderr, "Email: ")
		if _, err := fmt.Fscanln(os.Stdin, &email); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	password := optString(opts, "--password")
	if password == "" {
		var err error
		if password, err = prompt("Password"); err != nil {
			return err
		}
	}

	s, err := a.service.SignIn(ctx, model.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	return a.signedIn(ctx, s)
}

func register(ctx context.Context, a *app, opts docopt.Opts) error {
	password, confirm, err := promptNewPassword()
	if err != nil {
		return err
	}

	s, err := a.service.Register(ctx, model.Registration{
		FirstName:       optString(opts, "--first"),
		LastName:        optString(opts, "--last"),
		Email:           optString(opts, "--email"),
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}
	return a.signedIn(ctx, s)
}

func acceptInvite(ctx context.Context, a *app, opts docopt.Opts) error {
	password, confirm, err := promptNewPassword()
	if err != nil {
		return err
	}

	s, err := a.service.AcceptInvite(ctx, optString(opts, "<invite_token>"), model.InviteAcceptance{
		FirstName:       optString(opts, "--first"),
		LastName:        optString(opts, "--last"),
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}
	return a.signedIn(ctx, s)
}

func logout(ctx context.Context, a *app, _ docopt.Opts) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	Out.Printf("signed out")
	return nil
}

func whoami(ctx context.Context, a *app, _ docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	role := s.User.Role
	if role == "" {
		role = model.RoleUser
	}
	Out.Printf("%s %s <%s> (%s)", s.User.FirstName, s.User.LastName, s.User.Email, role)
	return nil
}

func families(ctx context.Context, a *app, _ docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	list, err := a.service.Families(ctx, s)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		Out.Printf("no families yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tROLE")
	for _, f := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", f.ID, f.Name, f.MemberCount, f.Role)
	}
	return w.Flush()
}

func familyTree(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	depth := a.service.MaxDepth()
	if v := optString(opts, "--depth"); v != "" {
		if depth, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid depth %q", v)
		}
	}

	t, err := a.service.Tree(ctx, s, familyID(opts))
	if err != nil {
		return err
	}
	if t.Empty {
		Out.Printf("this family has no members yet, add the first member to start the tree")
		return nil
	}
	return t.Forest.Fprint(os.Stdout, depth)
}

func events(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	views, err := a.service.Events(ctx, s, familyID(opts))
	if err != nil {
		return err
	}
	if len(views) == 0 {
		Out.Printf("no upcoming events")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tGOING\tMAYBE\tNOT GOING\tYOU")
	for _, v := range views {
		printEvent(w, v)
	}
	return w.Flush()
}

func printEvent(w *tabwriter.Writer, v event.View) {
	date := "-"
	if !v.Event.Date.IsZero() {
		date = v.Event.Date.Format("2006-01-02 15:04")
	}
	mine := v.MyStatus
	if mine == "" {
		mine = "-"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
		v.Event.ID, v.Event.Title, date, v.Tally.Going, v.Tally.Maybe, v.Tally.NotGoing, mine)
}

func rsvp(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}

	status := model.RSVPMaybe
	for _, candidate := range []string{model.RSVPGoing, model.RSVPNotGoing} {
		if selected, _ := opts.Bool(candidate); selected {
			status = candidate
		}
	}

	eventID := optString(opts, "<event_id>")
	family := optString(opts, "--family")

	var listed []event.View
	if family != "" {
		listed, err = a.service.Events(ctx, s, family)
		if err != nil {
			return err
		}
	}

	v, err := a.service.RSVP(ctx, s, eventID, status)
	if err != nil {
		return err
	}

	shown := []event.View{*v}
	if family != "" {
		var found bool
		shown, found = patchedViews(listed, v.Event, s.User.ID)
		if !found {
			Err.Printf("event %s is not listed for family %s", eventID, family)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tGOING\tMAYBE\tNOT GOING\tYOU")
	for _, view := range shown {
		printEvent(w, view)
	}
	return w.Flush()
}

// patchedViews replaces the single answered event in an already loaded list
// instead of fetching the list again.
func patchedViews(listed []event.View, updated model.Event, userID string) ([]event.View, bool) {
	events := make([]model.Event, 0, len(listed))
	for _, v := range listed {
		events = append(events, v.Event)
	}
	board := event.NewBoard(events)
	found := board.Patch(updated)
	return event.Views(board.Events(), userID), found
}

func messages(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	list, err := a.service.Messages(ctx, s, familyID(opts))
	if err != nil {
		return err
	}
	for _, m := range list {
		printMessage(m)
	}
	return nil
}

func send(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	m, err := a.service.SendMessage(ctx, s, familyID(opts), optString(opts, "<message>"))
	if err != nil {
		return err
	}
	printMessage(*m)
	return nil
}

func printMessage(m model.Message) {
	at := ""
	if !m.CreatedAt.IsZero() {
		at = m.CreatedAt.Local().Format("15:04") + " "
	}
	Out.Printf("%s%s: %s", at, m.Sender.DisplayName(), m.Content)
}

func adminMembers(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	users, err := a.service.AdminMembers(ctx, s, familyID(opts))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", u.ID, u.FirstName, u.LastName, u.Email, u.Role)
	}
	return w.Flush()
}
