package entity

// Credentials is the login payload of doctors and patients.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PatientSignup is the payload that creates a patient account.
type PatientSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
