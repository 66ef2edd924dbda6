package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/elimpostor/elimpostor/internal/gameconfig"
)

// ConfigCmd inspects the remembered game setup.
type ConfigCmd struct {
	Show  ShowConfigCmd  `cmd:"" default:"1" help:"Show the remembered roster, category, and variant"`
	Clear ClearConfigCmd `cmd:"" help:"Forget the remembered setup"`
}

type ShowConfigCmd struct{}

func (c *ShowConfigCmd) Run(g *Globals) error {
	app, err := newEnv(g)
	if err != nil {
		return err
	}
	defer app.cleanup()

	remembered := gameconfig.New(app.kv, app.logger).Load(context.Background())
	if len(remembered.Players) == 0 && remembered.SelectedCategory == "" && remembered.SelectedVariant == "" {
		fmt.Println("nothing remembered yet")
		return nil
	}

	fmt.Printf("players:  %s\n", strings.Join(remembered.Players, ", "))
	fmt.Printf("category: %s\n", remembered.SelectedCategory)
	fmt.Printf("variant:  %s\n", remembered.SelectedVariant)
	return nil
}

type ClearConfigCmd struct{}

func (c *ClearConfigCmd) Run(g *Globals) error {
	app, err := newEnv(g)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if !gameconfig.New(app.kv, app.logger).Clear(context.Background()) {
		return fmt.Errorf("clearing the remembered setup failed")
	}
	fmt.Println("setup forgotten")
	return nil
}
