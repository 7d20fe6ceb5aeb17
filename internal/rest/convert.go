package rest

import (
	api "github.com/s21platform/family-web/internal/generated"
	"github.com/s21platform/family-web/internal/event"
	"github.com/s21platform/family-web/internal/model"
	"github.com/s21platform/family-web/internal/tree"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toUser(u model.User) api.User {
	return api.User{
		Id:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		ProfilePhoto: optional(u.ProfilePhoto),
	}
}

func toFamily(f model.Family) api.Family {
	family := api.Family{
		Id:          f.ID,
		Name:        f.Name,
		Description: optional(f.Description),
		Role:        optional(f.Role),
	}
	if f.MemberCount > 0 {
		count := f.MemberCount
		family.MemberCount = &count
	}
	return family
}

func toTreeNodes(views []*tree.View) []api.TreeNode {
	nodes := make([]api.TreeNode, 0, len(views))
	for _, v := range views {
		nodes = append(nodes, api.TreeNode{
			Id:           v.ID,
			Name:         v.Name,
			Photo:        optional(v.Photo),
			Gender:       optional(v.Gender),
			Relationship: optional(v.Relationship),
			Generation:   v.Generation,
			Children:     toTreeNodes(v.Children),
		})
	}
	return nodes
}

func toAuthor(a *model.Author) *api.Author {
	if a == nil {
		return nil
	}
	return &api.Author{Id: a.ID, Name: a.DisplayName()}
}

func toMessage(m model.Message) api.Message {
	return api.Message{
		Id:        m.ID,
		Content:   m.Content,
		Sender:    toAuthor(m.Sender),
		CreatedAt: m.CreatedAt,
	}
}

func toEventView(v event.View) api.EventView {
	e := v.Event
	view := api.EventView{
		Id:          e.ID,
		Title:       e.Title,
		Description: optional(e.Description),
		Location:    optional(e.Location),
		MyStatus:    optional(v.MyStatus),
		Attendees:   make([]api.Attendee, 0, len(e.Attendees)),
		Tally: api.Tally{
			Going:    v.Tally.Going,
			NotGoing: v.Tally.NotGoing,
			Maybe:    v.Tally.Maybe,
		},
	}
	if !e.Date.IsZero() {
		date := e.Date
		view.Date = &date
	}
	for _, a := range e.Attendees {
		if a.User == nil {
			continue
		}
		view.Attendees = append(view.Attendees, api.Attendee{
			UserId: a.User.ID,
			Name:   optional(a.User.DisplayName()),
			Status: a.Status,
		})
	}
	return view
}
