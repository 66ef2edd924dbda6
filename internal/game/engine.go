package game

import (
	"github.com/charmbracelet/log"

	"github.com/elimpostor/elimpostor/internal/category"
	"github.com/elimpostor/elimpostor/internal/random"
)

// Engine assembles rounds. It owns no mutable state of its own: every
// StartRound call reads the category store and the random source and
// returns a fresh Round.
type Engine struct {
	src        random.Source
	categories *category.Store
	logger     *log.Logger
}

// NewEngine creates a round assembly engine.
func NewEngine(src random.Source, categories *category.Store, logger *log.Logger) *Engine {
	return &Engine{
		src:        src,
		categories: categories,
		logger:     logger.WithPrefix("engine"),
	}
}

// StartRound deals one complete round: shuffled seating, impostor set,
// optional jester, per-player role records, secret word, and a suggested
// starting player.
//
// The engine trusts the caller to have gated the roster size with
// IsVariantValid; it does not re-check. An undersized roster degrades to
// fewer impostors than the variant asks for (logged, not an error);
// validation belongs to the layer that owns user interaction.
func (e *Engine) StartRound(players []string, categoryKey string, variant Variant) Round {
	shuffled := random.Shuffle(e.src, players)

	impostorIndices := random.SelectIndices(e.src, variant.Impostors, len(shuffled), nil)
	if len(impostorIndices) < variant.Impostors {
		e.logger.Warn("roster smaller than variant impostor count",
			"variant", variant.ID,
			"players", len(shuffled),
			"impostors", len(impostorIndices))
	}

	jesterIndex := NoJester
	if variant.HasJester {
		exclude := make(map[int]struct{}, len(impostorIndices))
		for _, idx := range impostorIndices {
			exclude[idx] = struct{}{}
		}
		if picked := random.SelectIndices(e.src, 1, len(shuffled), exclude); len(picked) == 1 {
			jesterIndex = picked[0]
		}
	}

	roles := assignRoles(shuffled, impostorIndices, jesterIndex, variant)

	words := e.resolveWords(categoryKey)
	secretWord := ""
	if len(words) > 0 {
		secretWord = words[e.src.Next(len(words))]
	} else {
		e.logger.Warn("no words available for round", "category", categoryKey)
	}

	starter := ""
	if len(shuffled) > 0 {
		starter = shuffled[e.src.Next(len(shuffled))]
	}

	return Round{
		Players:         shuffled,
		ImpostorIndices: impostorIndices,
		JesterIndex:     jesterIndex,
		Roles:           roles,
		SecretWord:      secretWord,
		Starter:         starter,
	}
}

// assignRoles derives the record for each seat. Impostor partners are
// revealed only when the variant says so and more than one impostor
// plays; the partner is the first other impostor seat, which is the
// unique other one in the two-impostor variants this design guarantees.
func assignRoles(players []string, impostorIndices []int, jesterIndex int, variant Variant) []RoleRecord {
	impostorSet := make(map[int]struct{}, len(impostorIndices))
	for _, idx := range impostorIndices {
		impostorSet[idx] = struct{}{}
	}

	roles := make([]RoleRecord, len(players))
	for i := range players {
		_, isImpostor := impostorSet[i]
		switch {
		case isImpostor:
			partner := ""
			if variant.ImpostorsKnowEachOther && len(impostorIndices) > 1 {
				for _, other := range impostorIndices {
					if other != i {
						partner = players[other]
						break
					}
				}
			}
			roles[i] = impostorRecord(partner)
		case i == jesterIndex:
			roles[i] = jesterRecord()
		default:
			roles[i] = citizenRecord()
		}
	}
	return roles
}

// resolveWords returns the active word list: the named category if the
// store knows it, otherwise the mixed category. A stale persisted
// selection (for example a deleted custom category) still starts a game
// instead of erroring.
func (e *Engine) resolveWords(categoryKey string) []string {
	if words, ok := e.categories.Words(categoryKey); ok {
		return words
	}
	e.logger.Debug("unknown category, falling back to mixed", "category", categoryKey)
	words, _ := e.categories.Words(category.MixedKey)
	return words
}
