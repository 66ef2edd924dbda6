package main

import (
	"context"
	"fmt"

	"github.com/elimpostor/elimpostor/internal/category"
)

// CategoriesCmd groups the word-bank management commands.
type CategoriesCmd struct {
	List       ListCategoriesCmd  `cmd:"" default:"1" help:"List all categories"`
	AddWord    AddWordCmd         `cmd:"" name:"add-word" help:"Add a word to a category"`
	RemoveWord RemoveWordCmd      `cmd:"" name:"remove-word" help:"Remove a word from a category"`
	Create     CreateCategoryCmd  `cmd:"" help:"Create a custom category"`
	Delete     DeleteCategoryCmd  `cmd:"" help:"Delete a custom category"`
	Reset      ResetCategoriesCmd `cmd:"" help:"Restore built-in categories to their shipped content"`
}

// withCategories loads the store, runs fn, and flushes the outcome.
func withCategories(g *Globals, fn func(ctx context.Context, cats *category.Store) error) error {
	app, err := newEnv(g)
	if err != nil {
		return err
	}
	defer app.cleanup()
	ctx := context.Background()

	cats := category.NewStore(app.kv, app.logger)
	defer cats.Close()
	cats.LoadCustom(ctx)

	if err := fn(ctx, cats); err != nil {
		return err
	}
	if !cats.Flush() {
		app.logger.Warn("category changes may not have been saved")
	}
	return nil
}

type ListCategoriesCmd struct{}

func (c *ListCategoriesCmd) Run(g *Globals) error {
	return withCategories(g, func(ctx context.Context, cats *category.Store) error {
		for _, opt := range cats.Options() {
			marker := " "
			switch {
			case opt.Custom:
				marker = "+"
			case opt.Modified:
				marker = "*"
			}
			fmt.Printf("%s %s %-14s %-14s %3d palabras\n",
				marker, opt.Emoji, opt.Key, opt.Name, opt.WordCount)
		}
		return nil
	})
}

type AddWordCmd struct {
	Category string `arg:"" help:"Category key"`
	Word     string `arg:"" help:"Word to add"`
}

func (c *AddWordCmd) Run(g *Globals) error {
	return withCategories(g, func(ctx context.Context, cats *category.Store) error {
		cats.AddWord(c.Category, c.Word)
		return nil
	})
}

type RemoveWordCmd struct {
	Category string `arg:"" help:"Category key"`
	Word     string `arg:"" help:"Word to remove"`
}

func (c *RemoveWordCmd) Run(g *Globals) error {
	return withCategories(g, func(ctx context.Context, cats *category.Store) error {
		cats.RemoveWord(c.Category, c.Word)
		return nil
	})
}

type CreateCategoryCmd struct {
	Key   string   `arg:"" help:"New category key"`
	Name  string   `help:"Display name; defaults to the key" optional:""`
	Emoji string   `help:"Display emoji" default:"📦"`
	Words []string `help:"Initial words (repeatable)" short:"w"`
}

func (c *CreateCategoryCmd) Run(g *Globals) error {
	return withCategories(g, func(ctx context.Context, cats *category.Store) error {
		name := c.Name
		if name == "" {
			name = c.Key
		}
		if !cats.Create(c.Key, name, c.Emoji, c.Words) {
			return fmt.Errorf("category %q already exists", c.Key)
		}
		return nil
	})
}

type DeleteCategoryCmd struct {
	Key string `arg:"" help:"Custom category key"`
}

func (c *DeleteCategoryCmd) Run(g *Globals) error {
	return withCategories(g, func(ctx context.Context, cats *category.Store) error {
		if !cats.Delete(c.Key) {
			return fmt.Errorf("%q is not a deletable custom category (built-ins can only be reset)", c.Key)
		}
		return nil
	})
}

type ResetCategoriesCmd struct {
	Key string `arg:"" optional:"" help:"Built-in category key; omit with --all to reset everything"`
	All bool   `help:"Reset every category and forget all customizations"`
}

func (c *ResetCategoriesCmd) Run(g *Globals) error {
	return withCategories(g, func(ctx context.Context, cats *category.Store) error {
		if c.All {
			cats.ResetAll(ctx)
			return nil
		}
		if c.Key == "" {
			return fmt.Errorf("name a category key or pass --all")
		}
		cats.ResetOne(c.Key)
		return nil
	})
}
