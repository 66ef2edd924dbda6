// Package game implements the round assembly core: variant rulesets and
// the engine that turns a roster, a category, and a variant into a full
// role assignment.
package game

// Variant is an immutable ruleset: how many impostors play, whether a
// jester is dealt, and whether impostors learn each other's identity.
// Every shipped variant keeps at least one citizen:
// Impostors + jester < MinPlayers.
type Variant struct {
	ID                     string
	Name                   string
	Emoji                  string
	Description            string
	MinPlayers             int
	Impostors              int
	HasJester              bool
	ImpostorsKnowEachOther bool
}

// specialRoles counts the non-citizen seats the variant deals.
func (v Variant) specialRoles() int {
	n := v.Impostors
	if v.HasJester {
		n++
	}
	return n
}

// variants is the fixed shipped set; not user-extensible.
var variants = []Variant{
	{
		ID:          "classic",
		Name:        "Clásico",
		Emoji:       "🎭",
		Description: "Un impostor intenta pasar desapercibido.",
		MinPlayers:  3,
		Impostors:   1,
	},
	{
		ID:                     "duo",
		Name:                   "Dúo",
		Emoji:                  "👥",
		Description:            "Dos impostores que se conocen entre sí.",
		MinPlayers:             5,
		Impostors:              2,
		ImpostorsKnowEachOther: true,
	},
	{
		ID:          "jester",
		Name:        "Bufón",
		Emoji:       "🃏",
		Description: "Un impostor y un bufón que quiere ser expulsado.",
		MinPlayers:  4,
		Impostors:   1,
		HasJester:   true,
	},
	{
		ID:          "shadows",
		Name:        "Sombras",
		Emoji:       "🌑",
		Description: "Dos impostores que no saben quién es el otro.",
		MinPlayers:  5,
		Impostors:   2,
	},
	{
		ID:                     "chaos",
		Name:                   "Caos",
		Emoji:                  "🌪️",
		Description:            "Dos impostores aliados y un bufón suelto.",
		MinPlayers:             6,
		Impostors:              2,
		HasJester:              true,
		ImpostorsKnowEachOther: true,
	},
}

// Variants returns the shipped variants in display order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// VariantByID looks up a shipped variant.
func VariantByID(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// IsVariantValid reports whether a roster is large enough for a variant.
// The UI gates variant selection with this; the engine itself trusts the
// caller checked it.
func IsVariantValid(v Variant, playerCount int) bool {
	return playerCount >= v.MinPlayers
}
