package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name         string   `json:"name" validate:"required,min=3,max=100"`
	Specialty    string   `json:"specialty" validate:"required,min=3,max=50"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6"`
	Phone        string   `json:"phone" validate:"required,numeric,len=10"`
	Availability []string `json:"availability" validate:"omitempty,dive,required"`
}

// DoctorFilterQuery is read from the filter inputs of the doctor listing.
// Empty values mean "no filter".
type DoctorFilterQuery struct {
	Name      string `validate:"omitempty,max=100"`
	Time      string `validate:"omitempty,oneof=AM PM"`
	Specialty string `validate:"omitempty,max=50"`
}
