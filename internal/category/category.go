// Package category owns the word banks the game draws secret words from:
// built-in defaults, user customizations layered on top, and the derived
// mixed category that always equals the union of every other bank.
package category

// MixedKey is the reserved key of the derived category. Its word list is
// recomputed from all other categories and is never edited or persisted
// directly.
const MixedKey = "mixed"

// Category is one word bank. Custom marks categories created by the user;
// built-in categories keep Custom false even when their content has been
// edited (edits are tracked as customizations over the shipped default).
type Category struct {
	Emoji  string
	Name   string
	Words  []string
	Custom bool
}

func (c *Category) clone() *Category {
	out := &Category{
		Emoji:  c.Emoji,
		Name:   c.Name,
		Words:  make([]string, len(c.Words)),
		Custom: c.Custom,
	}
	copy(out.Words, c.Words)
	return out
}

func (c *Category) hasWord(word string) bool {
	for _, w := range c.Words {
		if w == word {
			return true
		}
	}
	return false
}

// Option is the display projection of one category.
type Option struct {
	Key       string
	Emoji     string
	Name      string
	WordCount int
	Custom    bool
	Modified  bool
}
