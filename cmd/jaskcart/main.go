package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/jask/jaskcart/internal/config"
	"github.com/jask/jaskcart/internal/list"
	"github.com/jask/jaskcart/internal/logging"
	"github.com/jask/jaskcart/internal/tui"
)

func main() {
	app := &cli.App{
		Name:  "jaskcart",
		Usage: "shopping list and cart in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the TOML config file",
				EnvVars: []string{config.EnvPrefix + "_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override log.level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "override log.path; empty string disables logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "jaskcart: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.Path = c.String("log-file")
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	keys := loadKeys(cfg, log)

	store := list.New(
		list.WithDispatcher(logging.Dispatcher{Log: log}),
		list.WithDispatchErrorHandler(func(e list.Event, err error) {
			log.WithError(err).WithField("event", e.Type()).Warn("store event not delivered")
		}),
	)
	ctx := list.NewContext(context.Background(), store)

	model, err := tui.New(ctx, cfg, keys, log)
	if err != nil {
		return errors.Wrap(err, "start ui")
	}
	log.WithField("keybindings", cfg.UI.KeybindingsPath).Info("jaskcart started")

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "run ui")
	}
	log.Info("jaskcart stopped")
	return nil
}

func loadKeys(cfg config.Config, log logrus.FieldLogger) tui.KeyMap {
	overrides, err := config.LoadKeybindings(cfg.UI.KeybindingsPath)
	if err != nil {
		log.WithError(err).Warn("ignoring keybindings file")
		return tui.DefaultKeyMap()
	}
	keys, err := tui.NewKeyMap(overrides)
	if err != nil {
		log.WithError(err).Warn("ignoring keybindings file")
		return tui.DefaultKeyMap()
	}
	return keys
}
