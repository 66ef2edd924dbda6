package game

import (
	"io"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elimpostor/elimpostor/internal/category"
	"github.com/elimpostor/elimpostor/internal/random"
	"github.com/elimpostor/elimpostor/internal/storage"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestEngine(t *testing.T, seed int64) (*Engine, *category.Store) {
	t.Helper()
	cats := category.NewStore(storage.NewMemory(), testLogger())
	t.Cleanup(cats.Close)
	return NewEngine(random.Seeded(seed), cats, testLogger()), cats
}

func roleCounts(round Round) map[Role]int {
	counts := make(map[Role]int)
	for _, record := range round.Roles {
		counts[record.Role]++
	}
	return counts
}

func TestStartRoundClassicInvariants(t *testing.T) {
	engine, _ := newTestEngine(t, 42)
	players := []string{"Ana", "Bea", "Cid", "Dario"}
	classic, _ := VariantByID("classic")

	round := engine.StartRound(players, "animales", classic)

	require.Len(t, round.Players, len(players))
	sortedIn := append([]string(nil), players...)
	sortedOut := append([]string(nil), round.Players...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	assert.Equal(t, sortedIn, sortedOut, "shuffled roster is a permutation of the input")

	require.Len(t, round.ImpostorIndices, 1)
	assert.Equal(t, NoJester, round.JesterIndex)

	counts := roleCounts(round)
	assert.Equal(t, 1, counts[RoleImpostor])
	assert.Equal(t, len(players)-1, counts[RoleCitizen])
	assert.Zero(t, counts[RoleJester])

	require.Len(t, round.Roles, len(players))
	for i, record := range round.Roles {
		if record.Role == RoleImpostor {
			assert.Contains(t, round.ImpostorIndices, i)
			assert.Empty(t, record.Partner, "single impostor has no partner")
		}
		assert.Equal(t, record.Role != RoleImpostor, record.Role.KnowsWord())
	}

	assert.NotEmpty(t, round.SecretWord)
	words, _ := engine.categories.Words("animales")
	assert.Contains(t, words, round.SecretWord)
	assert.Contains(t, round.Players, round.Starter)
}

func TestStartRoundChaosEndToEnd(t *testing.T) {
	engine, _ := newTestEngine(t, 99)
	players := []string{"Ana", "Bea", "Cid", "Dario", "Elena", "Fabio"}
	chaos, _ := VariantByID("chaos")

	round := engine.StartRound(players, "comida", chaos)

	require.Len(t, round.ImpostorIndices, 2)
	require.NotEqual(t, NoJester, round.JesterIndex)
	assert.NotContains(t, round.ImpostorIndices, round.JesterIndex,
		"the jester seat is distinct from both impostor seats")

	counts := roleCounts(round)
	assert.Equal(t, 2, counts[RoleImpostor])
	assert.Equal(t, 1, counts[RoleJester])
	assert.Equal(t, 3, counts[RoleCitizen])
}

func TestImpostorPartnersAreSymmetric(t *testing.T) {
	duo, _ := VariantByID("duo")
	players := []string{"Ana", "Bea", "Cid", "Dario", "Elena"}

	for seed := int64(0); seed < 25; seed++ {
		engine, _ := newTestEngine(t, seed)
		round := engine.StartRound(players, "animales", duo)
		require.Len(t, round.ImpostorIndices, 2)

		first, second := round.ImpostorIndices[0], round.ImpostorIndices[1]
		assert.Equal(t, round.Players[second], round.Roles[first].Partner)
		assert.Equal(t, round.Players[first], round.Roles[second].Partner)
	}
}

func TestShadowsImpostorsStayAnonymous(t *testing.T) {
	engine, _ := newTestEngine(t, 7)
	shadows, _ := VariantByID("shadows")
	round := engine.StartRound([]string{"Ana", "Bea", "Cid", "Dario", "Elena"}, "animales", shadows)

	for _, idx := range round.ImpostorIndices {
		assert.Empty(t, round.Roles[idx].Partner,
			"shadows impostors must not learn each other")
	}
}

func TestStartRoundUnknownCategoryFallsBackToMixed(t *testing.T) {
	engine, cats := newTestEngine(t, 5)
	classic, _ := VariantByID("classic")

	round := engine.StartRound([]string{"Ana", "Bea", "Cid"}, "no-existe", classic)

	mixed, _ := cats.Words(category.MixedKey)
	assert.Contains(t, mixed, round.SecretWord)
}

func TestStartRoundIsDeterministicPerSeed(t *testing.T) {
	players := []string{"Ana", "Bea", "Cid", "Dario", "Elena", "Fabio"}
	chaos, _ := VariantByID("chaos")

	engineA, _ := newTestEngine(t, 1234)
	engineB, _ := newTestEngine(t, 1234)

	a := engineA.StartRound(players, "animales", chaos)
	b := engineB.StartRound(players, "animales", chaos)
	assert.Equal(t, a, b)
}

func TestStartRoundProducesFreshRounds(t *testing.T) {
	engine, _ := newTestEngine(t, 3)
	players := []string{"Ana", "Bea", "Cid", "Dario", "Elena", "Fabio", "Gema"}
	classic, _ := VariantByID("classic")

	differs := false
	first := engine.StartRound(players, "animales", classic)
	for i := 0; i < 10 && !differs; i++ {
		next := engine.StartRound(players, "animales", classic)
		if next.SecretWord != first.SecretWord ||
			next.ImpostorIndices[0] != first.ImpostorIndices[0] {
			differs = true
		}
	}
	assert.True(t, differs, "replays should not repeat the same deal every time")
}
