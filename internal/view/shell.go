package view

import "hospital-portal/internal/domain/entity"

const LandingPath = "/"

type NavKind string

const (
	NavModal NavKind = "modal"
	NavLink  NavKind = "link"
	NavPost  NavKind = "post"
)

// NavItem is one header control. Modal items carry the modal id in Target,
// post items the URL to post to.
type NavItem struct {
	Kind   NavKind
	ID     string
	Label  string
	Class  string
	Href   string
	Target string
}

type Header struct {
	Landing bool
	Items   []NavItem
}

// BuildHeader derives the whole navigation from the role on every render.
func BuildHeader(path string, role entity.Role) Header {
	if path == LandingPath {
		return Header{Landing: true}
	}
	return Header{Items: entity.MatchRole[[]NavItem](role, headerItems{})}
}

type headerItems struct{}

func (headerItems) None() []NavItem { return nil }

func (headerItems) Admin() []NavItem {
	return []NavItem{
		{Kind: NavModal, ID: "addDocBtn", Label: "Add Doctor", Class: "adminBtn", Target: "addDoctor"},
		{Kind: NavPost, ID: "logout", Label: "Logout", Href: "/logout"},
	}
}

func (headerItems) Doctor() []NavItem {
	return []NavItem{
		{Kind: NavLink, ID: "home", Label: "Home", Class: "adminBtn", Href: "/doctor/dashboard"},
		{Kind: NavPost, ID: "logout", Label: "Logout", Href: "/logout"},
	}
}

func (headerItems) Patient() []NavItem {
	return []NavItem{
		{Kind: NavModal, ID: "patientLogin", Label: "Login", Class: "adminBtn", Target: "patientLogin"},
		{Kind: NavModal, ID: "patientSignup", Label: "Sign Up", Class: "adminBtn", Target: "patientSignup"},
	}
}

func (headerItems) LoggedPatient() []NavItem {
	return []NavItem{
		{Kind: NavLink, ID: "home", Label: "Home", Class: "adminBtn", Href: "/patient/dashboard"},
		{Kind: NavLink, ID: "patientAppointments", Label: "Appointments", Class: "adminBtn", Href: "/patient/appointments"},
		{Kind: NavPost, ID: "logout", Label: "Logout", Href: "/logout/patient"},
	}
}

type FooterColumn struct {
	Title string
	Links []string
}

type Footer struct {
	Copyright string
	Columns   []FooterColumn
}

func BuildFooter() Footer {
	return Footer{
		Copyright: "© Copyright 2025. All Rights Reserved by Hospital CMS.",
		Columns: []FooterColumn{
			{Title: "Company", Links: []string{"About", "Careers", "Press"}},
			{Title: "Support", Links: []string{"Account", "Help Center", "Contact Us"}},
			{Title: "Legals", Links: []string{"Terms & Conditions", "Privacy Policy", "Licensing"}},
		},
	}
}
