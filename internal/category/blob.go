package category

import "encoding/json"

// persistedCategory is the wire shape of one customization entry.
type persistedCategory struct {
	Emoji string   `json:"emoji"`
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// rawEntry mirrors persistedCategory with pointer fields so missing keys
// are distinguishable from zero values during shape validation.
type rawEntry struct {
	Emoji *string   `json:"emoji"`
	Name  *string   `json:"name"`
	Words *[]string `json:"words"`
}

// decodeCustomizations validates the persisted blob: a JSON object whose
// entries each carry a string emoji, a string name, and an array of
// strings. Anything else makes the whole blob invalid; the caller
// discards it rather than keeping a partially-typed result.
func decodeCustomizations(blob string) (map[string]persistedCategory, bool) {
	var raw map[string]rawEntry
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, false
	}
	out := make(map[string]persistedCategory, len(raw))
	for key, entry := range raw {
		if key == "" || entry.Emoji == nil || entry.Name == nil || entry.Words == nil {
			return nil, false
		}
		out[key] = persistedCategory{
			Emoji: *entry.Emoji,
			Name:  *entry.Name,
			Words: *entry.Words,
		}
	}
	return out, true
}
