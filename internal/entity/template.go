package entity

// Default accent color pair applied to new templates.
var defaultTemplateColors = []string{"#0A66C2", "#FF6F00"}

// JerseyTemplate is one catalog design, stored in the "jerseytemplate"
// collection.
type JerseyTemplate struct {
	Sport      string   `json:"sport" bson:"sport" validate:"required,oneof=cricket football basketball kabaddi hockey badminton"`
	Name       string   `json:"name" bson:"name" validate:"required"`
	Colors     []string `json:"colors" bson:"colors"`
	PreviewURL string   `json:"preview_url,omitempty" bson:"preview_url,omitempty"`
	SVG        string   `json:"svg,omitempty" bson:"svg,omitempty"`
	IsPublic   *bool    `json:"is_public" bson:"is_public"`
}

func (t *JerseyTemplate) ApplyDefaults() {
	if t.Colors == nil {
		colors := make([]string, len(defaultTemplateColors))
		copy(colors, defaultTemplateColors)
		t.Colors = colors
	}
	if t.IsPublic == nil {
		public := true
		t.IsPublic = &public
	}
}
