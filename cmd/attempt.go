package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solvio/solvio/internal/attempt"
	"github.com/solvio/solvio/internal/questionbank"
	"github.com/solvio/solvio/internal/store"
)

// attemptCmd exercises the attempt lifecycle from the command line.
// The platform drives these operations over its own transport; this
// surface exists for local testing and operational poking.
var attemptCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Drive the quiz attempt lifecycle",
}

func attemptService(cmd *cobra.Command) (*attempt.Service, *store.Store, error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	bank := questionbank.NewBank(s.Questions())
	return attempt.NewService(s.Ledger(), bank), s, nil
}

func callerFrom(cmd *cobra.Command) attempt.Caller {
	user, _ := cmd.Flags().GetString("user")
	admin, _ := cmd.Flags().GetBool("admin")
	role := attempt.RoleLearner
	if admin {
		role = attempt.RoleAdmin
	}
	return attempt.Caller{UserID: user, Role: role}
}

var attemptStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new quiz attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		skills, _ := cmd.Flags().GetStringSlice("skills")

		svc, s, err := attemptService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := svc.Start(cmd.Context(), attempt.StartInput{
			Caller:         callerFrom(cmd),
			Subject:        subject,
			Topic:          topic,
			TotalQuestions: count,
			SkillFilters:   skills,
		})
		if err != nil {
			return err
		}

		fmt.Printf("attempt %s\n\n", res.AttemptID)
		for _, item := range res.Items {
			fmt.Printf("%d. [%s] %s\n", item.Ordinal, item.ItemID, item.Stem)
			for _, opt := range item.Options {
				fmt.Printf("   %s) %s\n", opt.ID, opt.Text)
			}
		}
		return nil
	},
}

var attemptAnswerCmd = &cobra.Command{
	Use:   "answer <attempt-id> <item-id> <option>",
	Short: "Submit an answer for one item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")

		svc, s, err := attemptService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := svc.SubmitAnswer(cmd.Context(), attempt.AnswerInput{
			Caller:         callerFrom(cmd),
			AttemptID:      args[0],
			ItemID:         args[1],
			Option:         args[2],
			IdempotencyKey: key,
		})
		if err != nil {
			return err
		}

		if res.IsCorrect {
			fmt.Printf("correct (score %.0f)\n", res.Score)
		} else {
			fmt.Printf("incorrect — the answer was %s\n", res.CorrectOption)
		}
		if res.Explanation != "" {
			fmt.Println(res.Explanation)
		}
		return nil
	},
}

var attemptSubmitCmd = &cobra.Command{
	Use:   "submit <attempt-id>",
	Short: "Complete an attempt and compute the final score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, s, err := attemptService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := svc.Submit(cmd.Context(), attempt.SubmitInput{
			Caller:    callerFrom(cmd),
			AttemptID: args[0],
		})
		if err != nil {
			return err
		}
		fmt.Printf("final score %.2f (%d of %d answered)\n",
			res.FinalScore, res.AnsweredCount, res.TotalQuestions)
		return nil
	},
}

var attemptAbandonCmd = &cobra.Command{
	Use:   "abandon <attempt-id>",
	Short: "Abandon an attempt without scoring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, s, err := attemptService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := svc.Abandon(cmd.Context(), attempt.AbandonInput{
			Caller:    callerFrom(cmd),
			AttemptID: args[0],
		}); err != nil {
			return err
		}
		fmt.Println("attempt abandoned")
		return nil
	},
}

var attemptHintCmd = &cobra.Command{
	Use:   "hint <attempt-id> <item-id>",
	Short: "Reveal the hint for an unanswered item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, s, err := attemptService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := svc.UseHint(cmd.Context(), attempt.HintInput{
			Caller:    callerFrom(cmd),
			AttemptID: args[0],
			ItemID:    args[1],
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s (hints used: %d)\n", res.Hint, res.HintsUsed)
		return nil
	},
}

func init() {
	attemptCmd.PersistentFlags().StringP("user", "u", "", "Acting user ID")
	attemptCmd.PersistentFlags().Bool("admin", false, "Act with the admin role")

	attemptStartCmd.Flags().String("subject", "", "Subject to draw questions from")
	attemptStartCmd.Flags().String("topic", "", "Topic within the subject")
	attemptStartCmd.Flags().IntP("count", "n", 5, "Number of questions")
	attemptStartCmd.Flags().StringSlice("skills", nil, "Restrict to these skills")

	attemptAnswerCmd.Flags().String("key", "", "Idempotency key for safe retries")

	attemptCmd.AddCommand(attemptStartCmd)
	attemptCmd.AddCommand(attemptAnswerCmd)
	attemptCmd.AddCommand(attemptSubmitCmd)
	attemptCmd.AddCommand(attemptAbandonCmd)
	attemptCmd.AddCommand(attemptHintCmd)

	rootCmd.AddCommand(attemptCmd)
}
