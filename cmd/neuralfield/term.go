package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/neural-field-go/internal/term"
)

func (a *app) termCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the field in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			return term.Run(cmd.Context(), screen, a.cfg, a.newField, a.logger)
		},
	}
}
