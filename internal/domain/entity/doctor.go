package entity

import "encoding/json"

// Doctor is exchanged verbatim with the backend. Password is only sent on create.
type Doctor struct {
	ID             int64    `json:"id,omitempty"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Password       string   `json:"password,omitempty"`
	Specialty      string   `json:"specialty"`
	AvailableTimes []string `json:"availableTimes"`
}

// UnmarshalJSON accepts the legacy "availability" key when "availableTimes" is absent.
func (d *Doctor) UnmarshalJSON(data []byte) error {
	type doctorAlias Doctor
	aux := struct {
		*doctorAlias
		Availability []string `json:"availability"`
	}{doctorAlias: (*doctorAlias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.AvailableTimes == nil && aux.Availability != nil {
		d.AvailableTimes = aux.Availability
	}
	return nil
}

// FilterSentinel stands in for an absent filter value. The backend routes
// filters positionally in the path, so a missing value cannot be omitted.
const FilterSentinel = "null"

// DoctorFilter is a domain-level filter for the doctor listing.
type DoctorFilter struct {
	Name      string
	Time      string // "AM" or "PM"
	Specialty string
}

func (f DoctorFilter) IsEmpty() bool {
	return f.Name == "" && f.Time == "" && f.Specialty == ""
}

// PathSegments returns name, time and specialty with the sentinel in place of empty values.
func (f DoctorFilter) PathSegments() []string {
	return []string{OrSentinel(f.Name), OrSentinel(f.Time), OrSentinel(f.Specialty)}
}

func OrSentinel(value string) string {
	if value == "" {
		return FilterSentinel
	}
	return value
}

// FindDoctor returns the doctor with the given id from a listing.
func FindDoctor(doctors []Doctor, id int64) (*Doctor, bool) {
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], true
		}
	}
	return nil, false
}
