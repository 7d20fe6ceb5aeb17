package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/docopt/docopt-go"

	familychat "github.com/s21platform/family-web/internal/chat"
	"github.com/s21platform/family-web/internal/client/familyapi"
	"github.com/s21platform/family-web/internal/client/socket"
)

// terminal prints each message once and reports connection changes.
type terminal struct {
	mu      sync.Mutex
	printed int
	state   string
	err     string
}

func (t *terminal) render(s familychat.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s.State != t.state {
		t.state = s.State
		Err.Printf("[%s]", s.State)
	}
	for ; t.printed < len(s.Messages); t.printed++ {
		printMessage(s.Messages[t.printed])
	}
	if s.Error != "" && s.Error != t.err {
		Err.Printf("! %s", s.Error)
	}
	t.err = s.Error
}

// chat mounts an interactive channel view. Each input line is sent as a
// message; /quit leaves.
func chat(ctx context.Context, a *app, opts docopt.Opts) error {
	s, err := a.current(ctx)
	if err != nil {
		return err
	}
	id := familyID(opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := &terminal{}
	view := familychat.New(id, a.service.Channel(s), a.service.Validator(), a.logger,
		familychat.WithOnChange(out.render))
	stream := socket.New(socket.SettingsFromConfig(a.cfg, s.Token), a.logger)

	mounted := make(chan error, 1)
	go func() {
		mounted <- view.Mount(ctx, stream)
		cancel()
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return <-mounted
		case line, ok := <-lines:
			if !ok || strings.TrimSpace(line) == "/quit" {
				cancel()
				return <-mounted
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			view.SetDraft(line)
			if _, err := view.Send(ctx); err != nil {
				Err.Printf("! %s", familyapi.UserMessage(err))
				if draft := view.Draft(); draft != "" {
					fmt.Fprintf(os.Stderr, "unsent: %s\n", draft)
				}
			}
		}
	}
}
