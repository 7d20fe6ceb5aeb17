package model

import "encoding/json"

type MemberList []Member

type Member struct {
	ID           string `json:"_id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Photo        string `json:"photo,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Generation   int    `json:"generation"`
	Father       *Ref   `json:"father,omitempty"`
	Mother       *Ref   `json:"mother,omitempty"`
	Spouse       *Ref   `json:"spouse,omitempty"`
	Family       *Ref   `json:"family,omitempty"`
}

func (m *Member) UnmarshalJSON(data []byte) error {
	type alias Member
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = Member(a)
	return fillID(data, &m.ID)
}

func (m Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// MemberChanged is published on the member topic whenever a family's member
// list is edited.
type MemberChanged struct {
	FamilyID string `json:"family_id"`
	MemberID string `json:"member_id,omitempty"`
	Action   string `json:"action,omitempty"`
}
