// Package event holds the client view of family events and their RSVPs.
package event

import (
	"sync"

	"github.com/s21platform/family-web/internal/model"
)

type Tally struct {
	Going    int `json:"going"`
	NotGoing int `json:"not_going"`
	Maybe    int `json:"maybe"`
}

func Count(e model.Event) Tally {
	var t Tally
	for _, a := range e.Attendees {
		switch a.Status {
		case model.RSVPGoing:
			t.Going++
		case model.RSVPNotGoing:
			t.NotGoing++
		case model.RSVPMaybe:
			t.Maybe++
		}
	}
	return t
}

// StatusOf returns userID's RSVP, or "" when the user has not answered.
func StatusOf(e model.Event, userID string) string {
	for _, a := range e.Attendees {
		if a.User != nil && a.User.ID == userID {
			return a.Status
		}
	}
	return ""
}

// SetAttendance overwrites the user's attendee record, adding one only when
// the user has none. Any stray duplicates for the user are dropped.
func SetAttendance(e *model.Event, userID, status string) {
	kept := e.Attendees[:0]
	replaced := false
	for _, a := range e.Attendees {
		if a.User != nil && a.User.ID == userID {
			if replaced {
				continue
			}
			a.Status = status
			replaced = true
		}
		kept = append(kept, a)
	}
	if !replaced {
		kept = append(kept, model.Attendee{User: &model.Author{ID: userID}, Status: status})
	}
	e.Attendees = kept
}

// Board is the event list of one family as last seen by a view. Responses
// are applied in arrival order; the last one wins.
type Board struct {
	mu     sync.Mutex
	events []model.Event
}

func NewBoard(events []model.Event) *Board {
	b := &Board{}
	b.Reset(events)
	return b
}

func (b *Board) Reset(events []model.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append([]model.Event(nil), events...)
}

func (b *Board) Events() []model.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Event(nil), b.events...)
}

// Patch replaces the single event carrying updated.ID. It reports whether
// the event was on the board.
func (b *Board) Patch(updated model.Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].ID == updated.ID {
			b.events[i] = updated
			return true
		}
	}
	return false
}

type View struct {
	Event    model.Event `json:"event"`
	Tally    Tally       `json:"tally"`
	MyStatus string      `json:"my_status,omitempty"`
}

func ViewOf(e model.Event, userID string) View {
	return View{Event: e, Tally: Count(e), MyStatus: StatusOf(e, userID)}
}

func Views(events []model.Event, userID string) []View {
	views := make([]View, 0, len(events))
	for _, e := range events {
		views = append(views, ViewOf(e, userID))
	}
	return views
}
