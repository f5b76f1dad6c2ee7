package entity

// DesignLayer is one positioned text or logo element on a jersey. All keys
// are optional; unknown keys are dropped on bind, known keys keep their
// types. Coordinates are fractions of the printable area.
type DesignLayer struct {
	Area    string  `json:"area,omitempty" bson:"area,omitempty"`
	Content string  `json:"content,omitempty" bson:"content,omitempty"`
	URL     string  `json:"url,omitempty" bson:"url,omitempty"`
	X       float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y       float64 `json:"y,omitempty" bson:"y,omitempty"`
	W       float64 `json:"w,omitempty" bson:"w,omitempty"`
	H       float64 `json:"h,omitempty" bson:"h,omitempty"`
}

// JerseyDesign is the visual configuration embedded in an order.
type JerseyDesign struct {
	FrontColor   string        `json:"front_color" bson:"front_color"`
	BackColor    string        `json:"back_color" bson:"back_color"`
	Accents      []string      `json:"accents" bson:"accents"`
	TextElements []DesignLayer `json:"text_elements" bson:"text_elements"`
	LogoElements []DesignLayer `json:"logo_elements" bson:"logo_elements"`
}

func (d *JerseyDesign) ApplyDefaults() {
	if d.FrontColor == "" {
		d.FrontColor = "#0A66C2"
	}
	if d.BackColor == "" {
		d.BackColor = "#0A66C2"
	}
	if d.Accents == nil {
		d.Accents = []string{"#FF6F00"}
	}
	if d.TextElements == nil {
		d.TextElements = []DesignLayer{}
	}
	if d.LogoElements == nil {
		d.LogoElements = []DesignLayer{}
	}
}
