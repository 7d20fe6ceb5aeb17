package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Ref points at another record either by raw id or by an embedded object
// carrying "_id" or "id". Only the id survives decoding.
type Ref struct {
	ID string
}

func NewRef(id string) *Ref {
	return &Ref{ID: id}
}

// Present reports whether the reference resolves to an id at all.
func (r *Ref) Present() bool {
	return r != nil && r.ID != ""
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	id, err := decodeID(data)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// decodeID accepts a string, a number, null or an object with "_id"/"id".
// Any other kind resolves to no id.
func decodeID(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{':
		var obj struct {
			MongoID json.RawMessage `json:"_id"`
			ID      json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return "", err
		}
		if len(obj.MongoID) > 0 {
			if id, err := decodeID(obj.MongoID); err == nil && id != "" {
				return id, nil
			}
		}
		if len(obj.ID) > 0 {
			return decodeID(obj.ID)
		}
		return "", nil
	case '[', 't', 'f':
		return "", nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return "", nil
		}
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		return n.String(), nil
	}
}

// fillID copies "id" into dst when the document carried no "_id".
func fillID(data []byte, dst *string) error {
	if *dst != "" {
		return nil
	}
	id, err := decodeID(data)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}
