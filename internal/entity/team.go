package entity

// JerseySizes are the accepted roster sizes, largest-last.
var JerseySizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// ValidSize reports whether s is one of the accepted jersey sizes.
func ValidSize(s string) bool {
	for _, size := range JerseySizes {
		if s == size {
			return true
		}
	}
	return false
}

// TeamRosterEntry is one player's name, shirt number and size.
type TeamRosterEntry struct {
	Name   string `json:"name" bson:"name"`
	Number string `json:"number" bson:"number"`
	Size   string `json:"size" bson:"size" validate:"required,oneof=XS S M L XL XXL"`
}

// Team groups a roster under a team name and sport, stored in the "team"
// collection. Logo references are plain URLs, not managed files.
type Team struct {
	TeamName       string            `json:"team_name" bson:"team_name" validate:"required"`
	Sport          string            `json:"sport" bson:"sport" validate:"required"`
	Roster         []TeamRosterEntry `json:"roster" bson:"roster" validate:"dive"`
	LogoURL        string            `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	SponsorLogoURL string            `json:"sponsor_logo_url,omitempty" bson:"sponsor_logo_url,omitempty"`
}

func (t *Team) ApplyDefaults() {
	if t.Roster == nil {
		t.Roster = []TeamRosterEntry{}
	}
}
