package model

import (
	"encoding/json"
	"time"
)

type MessageList []Message

type Message struct {
	ID        string    `json:"_id"`
	Sender    *Author   `json:"sender,omitempty"`
	Content   string    `json:"content"`
	Family    *Ref      `json:"family,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = Message(a)
	return fillID(data, &m.ID)
}

// Author is a user reference that keeps the display name when the server
// embeds the user object.
type Author struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (a *Author) UnmarshalJSON(data []byte) error {
	id, err := decodeID(data)
	if err != nil {
		return err
	}
	a.ID = id

	if len(data) > 0 && data[0] == '{' {
		var names struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		}
		if err := json.Unmarshal(data, &names); err != nil {
			return err
		}
		a.FirstName, a.LastName = names.FirstName, names.LastName
	}
	return nil
}

func (a *Author) DisplayName() string {
	if a == nil {
		return "unknown"
	}
	if a.FirstName == "" && a.LastName == "" {
		return a.ID
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
