package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/elimpostor/elimpostor/internal/category"
	"github.com/elimpostor/elimpostor/internal/game"
	"github.com/elimpostor/elimpostor/internal/gameconfig"
	"github.com/elimpostor/elimpostor/internal/random"
	"github.com/elimpostor/elimpostor/internal/tui"
)

// PlayCmd deals rounds until the group stops asking for another one.
type PlayCmd struct {
	Players  []string `help:"Player names (repeatable); defaults to the remembered roster" short:"p"`
	Category string   `help:"Category key; defaults to the remembered or mixed category" short:"c"`
	Variant  string   `help:"Variant id; defaults to the remembered variant or classic"`
}

func (c *PlayCmd) Run(g *Globals) error {
	app, err := newEnv(g)
	if err != nil {
		return err
	}
	defer app.cleanup()
	ctx := context.Background()

	cats := category.NewStore(app.kv, app.logger)
	defer cats.Close()
	cats.LoadCustom(ctx)

	persistence := gameconfig.New(app.kv, app.logger)
	remembered := persistence.Load(ctx)

	variant, err := resolveVariant(c.Variant, remembered.SelectedVariant)
	if err != nil {
		return err
	}

	categoryKey := firstNonEmpty(c.Category, remembered.SelectedCategory, category.MixedKey)

	players := c.Players
	if len(players) == 0 {
		players = remembered.Players
	}
	if len(players) < variant.MinPlayers {
		setup := tui.NewSetupModel(players, variant.MinPlayers, app.logger)
		if _, err := tea.NewProgram(setup).Run(); err != nil {
			return fmt.Errorf("roster setup failed: %w", err)
		}
		if setup.Aborted() {
			return nil
		}
		players = setup.Names()
	}
	if !game.IsVariantValid(variant, len(players)) {
		return fmt.Errorf("variant %s needs at least %d players, got %d",
			variant.ID, variant.MinPlayers, len(players))
	}

	// Remember the setup without blocking the game on the write.
	var saves errgroup.Group
	saves.Go(func() error {
		if !persistence.Save(ctx, gameconfig.Config{
			Players:          players,
			SelectedCategory: categoryKey,
			SelectedVariant:  variant.ID,
		}) {
			return fmt.Errorf("game setup was not remembered")
		}
		return nil
	})
	defer func() {
		if err := saves.Wait(); err != nil {
			app.logger.Warn("remembering game setup failed", "error", err)
		}
	}()

	engine := game.NewEngine(random.New(app.logger), cats, app.logger)
	for {
		round := engine.StartRound(players, categoryKey, variant)
		app.logger.Debug("round dealt",
			"variant", variant.ID,
			"category", categoryKey,
			"players", len(round.Players))

		reveal := tui.NewRevealModel(round, app.logger)
		if _, err := tea.NewProgram(reveal).Run(); err != nil {
			return fmt.Errorf("reveal flow failed: %w", err)
		}
		if !reveal.PlayAgain() {
			return nil
		}
	}
}

func resolveVariant(flag, remembered string) (game.Variant, error) {
	id := firstNonEmpty(flag, remembered, "classic")
	variant, ok := game.VariantByID(id)
	if !ok {
		ids := make([]string, 0, len(game.Variants()))
		for _, v := range game.Variants() {
			ids = append(ids, v.ID)
		}
		return game.Variant{}, fmt.Errorf("unknown variant %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return variant, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
