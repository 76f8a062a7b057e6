package model

// VehicleType tags a course with the vehicle transmission it applies to.
type VehicleType string

const (
	VehicleManual    VehicleType = "manuel"
	VehicleAutomatic VehicleType = "otomatik"
	VehicleBoth      VehicleType = "both"
)

// Valid reports whether v is one of the known vehicle types.
func (v VehicleType) Valid() bool {
	switch v {
	case VehicleManual, VehicleAutomatic, VehicleBoth:
		return true
	}
	return false
}

// Course is a product entry from courses.json. Read-only at runtime.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Duration    string      `json:"duration"`
	Features    []string    `json:"features"`
	Image       string      `json:"image"`
	Popular     bool        `json:"popular,omitempty"`
	VehicleType VehicleType `json:"vehicleType"`
}

// Instructor is an advisor profile from instructors.json.
type Instructor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Experience  string   `json:"experience"`
	Photo       string   `json:"photo"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
}
