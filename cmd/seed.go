package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solvio/solvio/internal/questionbank"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Import curated questions from a JSON seed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := questionbank.LoadSeedFile(args[0])
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		bank := questionbank.NewBank(s.Questions())
		ctx := cmd.Context()
		for _, q := range questions {
			if err := bank.Add(ctx, q); err != nil {
				return err
			}
		}

		fmt.Printf("%d questions imported from %s\n", len(questions), args[0])
		return nil
	},
}
