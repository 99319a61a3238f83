package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/roommate-matching/internal/storage"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <profile-a.json> <profile-b.json>",
		Short: "Score two profile files and print the breakdown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			a, err := storage.LoadProfileFromFile(args[0])
			if err != nil {
				return err
			}
			b, err := storage.LoadProfileFromFile(args[1])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(newEngine(cfg, log).Evaluate(a, b))
		},
	}
}
