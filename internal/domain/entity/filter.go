package entity

// PatientFilter is a domain-level filter for listing patients.
type PatientFilter struct {
	Search string // name or email, case-insensitive substring
	Gender string // case-insensitive exact
	Page   int
	Limit  int
}

// DoctorFilter is a domain-level filter for listing doctors.
type DoctorFilter struct {
	Search         string // name or specialization, case-insensitive substring
	Specialization string // case-insensitive exact
	Page           int
	Limit          int
}

// AppointmentFilter is a domain-level filter for listing appointments.
type AppointmentFilter struct {
	Search    string // patient or doctor name, case-insensitive substring
	Status    string // case-insensitive exact
	Date      string // Format: YYYY-MM-DD, exact
	DoctorID  string
	PatientID string
	Page      int
	Limit     int
}
