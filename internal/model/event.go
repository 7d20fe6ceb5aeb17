package model

import (
	"encoding/json"
	"time"
)

const (
	RSVPGoing    = "going"
	RSVPNotGoing = "not-going"
	RSVPMaybe    = "maybe"
)

type EventList []Event

type Event struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Date        time.Time  `json:"date"`
	Family      *Ref       `json:"family,omitempty"`
	CreatedBy   *Author    `json:"createdBy,omitempty"`
	Attendees   []Attendee `json:"attendees"`
}

func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = Event(a)
	return fillID(data, &e.ID)
}

type Attendee struct {
	User   *Author `json:"user"`
	Status string  `json:"status"`
}

func ValidRSVPStatus(status string) bool {
	switch status {
	case RSVPGoing, RSVPNotGoing, RSVPMaybe:
		return true
	}
	return false
}
