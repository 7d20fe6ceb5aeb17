package model

import "encoding/json"

type Family struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
	Role        string `json:"role,omitempty"`
}

func (f *Family) UnmarshalJSON(data []byte) error {
	type alias Family
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = Family(a)
	return fillID(data, &f.ID)
}
