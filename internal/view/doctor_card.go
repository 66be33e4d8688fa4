package view

import (
	"fmt"
	"strings"

	"hospital-portal/internal/domain/entity"
)

type ActionKind string

const (
	ActionDelete      ActionKind = "delete"
	ActionLoginPrompt ActionKind = "prompt"
	ActionBook        ActionKind = "overlay"
)

// Action is one control on a card. The page script dispatches on Kind.
type Action struct {
	Kind    ActionKind
	Label   string
	Class   string
	URL     string
	Confirm string
	Prompt  string
	Target  string
	List    string
}

// DoctorListID is the DOM id of the container holding the card list.
const DoctorListID = "content"

// DoctorCard is the view state of one doctor card.
type DoctorCard struct {
	ID           int64
	DOMID        string
	Name         string
	Specialty    string
	Email        string
	Availability string
	Actions      []Action
}

func DoctorDOMID(id int64) string {
	return fmt.Sprintf("doctor-%d", id)
}

// BuildDoctorCard renders the info section for every role and the action
// controls for the roles that have any.
func BuildDoctorCard(doctor entity.Doctor, role entity.Role) DoctorCard {
	return DoctorCard{
		ID:           doctor.ID,
		DOMID:        DoctorDOMID(doctor.ID),
		Name:         doctor.Name,
		Specialty:    "Specialty: " + doctor.Specialty,
		Email:        "Email: " + doctor.Email,
		Availability: "Available: " + strings.Join(doctor.AvailableTimes, ", "),
		Actions:      entity.MatchRole[[]Action](role, cardActions{doctor: doctor}),
	}
}

type cardActions struct {
	doctor entity.Doctor
}

func (c cardActions) None() []Action { return nil }

func (c cardActions) Doctor() []Action { return nil }

func (c cardActions) Admin() []Action {
	return []Action{{
		Kind:    ActionDelete,
		Label:   "Delete",
		Class:   "adminBtn",
		URL:     fmt.Sprintf("/admin/doctors/%d", c.doctor.ID),
		Confirm: fmt.Sprintf("Are you sure you want to delete Dr. %s?", c.doctor.Name),
		Target:  DoctorDOMID(c.doctor.ID),
		List:    DoctorListID,
	}}
}

func (c cardActions) Patient() []Action {
	return []Action{{
		Kind:   ActionLoginPrompt,
		Label:  "Book Now",
		Prompt: "Please log in to book an appointment.",
	}}
}

func (c cardActions) LoggedPatient() []Action {
	return []Action{{
		Kind:   ActionBook,
		Label:  "Book Now",
		URL:    fmt.Sprintf("/patient/booking/%d", c.doctor.ID),
		Target: "overlay",
	}}
}

const (
	MsgNoDoctors         = "No doctors found."
	MsgNoDoctorsFiltered = "No doctors found with the given filters."
	MsgLoadDoctorsFailed = "Failed to load doctors. Please try again later."
	MsgFilterFailed      = "Error filtering doctors. Try again later."
)

// DoctorListState is everything the card list depends on.
type DoctorListState struct {
	Role     entity.Role
	Doctors  []entity.Doctor
	Filtered bool
	Failed   bool
}

// DoctorList is either a set of cards or a single message, never both.
type DoctorList struct {
	Cards   []DoctorCard
	Message string
}

func BuildDoctorList(state DoctorListState) DoctorList {
	switch {
	case state.Failed && state.Filtered:
		return DoctorList{Message: MsgFilterFailed}
	case state.Failed:
		return DoctorList{Message: MsgLoadDoctorsFailed}
	case len(state.Doctors) == 0 && state.Filtered:
		return DoctorList{Message: MsgNoDoctorsFiltered}
	case len(state.Doctors) == 0:
		return DoctorList{Message: MsgNoDoctors}
	}

	cards := make([]DoctorCard, len(state.Doctors))
	for i, doctor := range state.Doctors {
		cards[i] = BuildDoctorCard(doctor, state.Role)
	}
	return DoctorList{Cards: cards}
}

// Without returns the list minus the card of doctor id. The other cards are untouched.
func (l DoctorList) Without(id int64) DoctorList {
	cards := make([]DoctorCard, 0, len(l.Cards))
	for _, card := range l.Cards {
		if card.ID != id {
			cards = append(cards, card)
		}
	}
	if len(cards) == 0 && len(l.Cards) > 0 {
		return DoctorList{Message: MsgNoDoctors}
	}
	return DoctorList{Cards: cards, Message: l.Message}
}
