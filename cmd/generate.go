package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solvio/solvio/internal/llm"
	"github.com/solvio/solvio/internal/questionbank"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate questions into the bank with an LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		skill, _ := cmd.Flags().GetString("skill")
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetInt("difficulty")

		if subject == "" || topic == "" || skill == "" {
			return fmt.Errorf("--subject, --topic, and --skill are required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: set SOLVIO_LLM_PROVIDER and its API key")
			}
			cfg = discovered
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, cfg, s.Events())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}

		gen := questionbank.New(provider, questionbank.DefaultConfig())
		bank := questionbank.NewBank(s.Questions())

		// Stems already in the bank feed the dedup section of the prompt.
		existing, err := bank.Select(ctx, subject, topic, []string{skill}, 50)
		if err != nil {
			return fmt.Errorf("load existing questions: %w", err)
		}
		priorStems := make([]string, len(existing))
		for i, q := range existing {
			priorStems[i] = q.Stem
		}

		added := 0
		rejected := 0
		for i := 0; i < count; i++ {
			q, err := gen.Generate(ctx, questionbank.GenerateInput{
				Subject:    subject,
				Topic:      topic,
				Skill:      skill,
				Difficulty: difficulty,
				PriorStems: priorStems,
			})
			if err != nil {
				var verr *questionbank.ValidationError
				if errors.As(err, &verr) && verr.Retryable {
					rejected++
					if rejected > count*3 {
						return fmt.Errorf("too many rejected generations (%d), giving up: %w", rejected, verr)
					}
					fmt.Printf("question %d rejected (%s), retrying\n", i+1, verr.Message)
					i--
					continue
				}
				return fmt.Errorf("generate question: %w", err)
			}
			if err := bank.Add(ctx, q); err != nil {
				return err
			}
			priorStems = append(priorStems, q.Stem)
			added++
			fmt.Printf("added: %s\n", q.Stem)
		}

		fmt.Printf("\n%d questions added to %s/%s (%s)\n", added, subject, topic, skill)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("subject", "", "Subject the questions belong to")
	generateCmd.Flags().String("topic", "", "Topic within the subject")
	generateCmd.Flags().String("skill", "", "Skill the questions exercise")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
	generateCmd.Flags().Int("difficulty", 0, "Target difficulty 1-5 (0 lets the model choose)")
}
