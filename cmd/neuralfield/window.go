package main

import (
	"github.com/spf13/cobra"

	"github.com/olivierh59500/neural-field-go/internal/display"
)

func (a *app) windowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the field in a desktop window (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runWindow,
	}
}

func (a *app) runWindow(_ *cobra.Command, _ []string) error {
	w := a.cfg.Window
	field := a.newField(float64(w.Width), float64(w.Height))
	return display.Run(a.cfg, field, a.logger)
}
