package entity

// AdminUser is modeled and exposed through the schema registry but not used
// by any route; the API carries no access control.
type AdminUser struct {
	Email string `json:"email" bson:"email" validate:"required"`
	Role  string `json:"role" bson:"role" validate:"oneof=admin manager"`
}

func (u *AdminUser) ApplyDefaults() {
	if u.Role == "" {
		u.Role = "admin"
	}
}
