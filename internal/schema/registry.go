package schema

import (
	"github.com/invopop/jsonschema"

	"jerseykraft/internal/entity"
)

// Registry maps each collection name to the JSON schema of the documents it
// holds, for external schema-driven tooling reading GET /schema. adminuser
// is registered even though no route uses it.
func Registry() map[string]*jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	return map[string]*jsonschema.Schema{
		"pricingtier":     r.Reflect(&entity.PricingTier{}),
		"jerseytemplate":  r.Reflect(&entity.JerseyTemplate{}),
		"teamrosterentry": r.Reflect(&entity.TeamRosterEntry{}),
		"team":            r.Reflect(&entity.Team{}),
		"jerseydesign":    r.Reflect(&entity.JerseyDesign{}),
		"paymentintent":   r.Reflect(&entity.PaymentIntent{}),
		"jerseyorder":     r.Reflect(&entity.JerseyOrder{}),
		"adminuser":       r.Reflect(&entity.AdminUser{}),
	}
}
