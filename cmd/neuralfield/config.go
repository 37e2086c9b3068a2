package main

import (
	"github.com/spf13/cobra"

	"github.com/olivierh59500/neural-field-go/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	var out string
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Write the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" {
				return config.Save(out, a.cfg)
			}
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	dump.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")

	cmd.AddCommand(dump)
	return cmd
}
