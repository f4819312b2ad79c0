package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solvio/solvio/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's mastery overview and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		days, _ := cmd.Flags().GetInt("days")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := progress.NewService(s.Ledger())
		ctx := cmd.Context()

		ov, err := svc.Overview(ctx, userID)
		if err != nil {
			return err
		}

		if len(ov.Subjects) == 0 {
			fmt.Printf("No practice history for %s yet.\n", userID)
			return nil
		}

		fmt.Printf("Progress for %s\n", userID)
		fmt.Println(strings.Repeat("─", 64))
		for _, subj := range ov.Subjects {
			fmt.Printf("%s  (mastery %.2f, %d answered)\n", subj.Subject, subj.MasteryLevel, subj.TotalAnswered)
			for _, topic := range subj.Topics {
				fmt.Printf("  %s  (mastery %.2f)\n", topic.Topic, topic.MasteryLevel)
				for _, sk := range topic.Skills {
					fmt.Printf("    %-24s  %.2f  %3d/%3d correct  streak %d (best %d)\n",
						sk.Skill, sk.MasteryLevel, sk.CorrectAnswers, sk.TotalAnswered,
						sk.CurrentStreak, sk.BestStreak)
				}
			}
		}
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Overall: %d answered, %d correct (accuracy %.2f)\n",
			ov.TotalAnswered, ov.CorrectAnswers, ov.Accuracy)

		activity, err := svc.RecentActivity(ctx, userID, days)
		if err != nil {
			return err
		}
		if len(activity) > 0 {
			fmt.Println()
			fmt.Println("Recent activity")
			fmt.Println(strings.Repeat("─", 64))
			for _, day := range activity {
				fmt.Printf("%s  %3d answered  %3d correct  accuracy %.2f  mean score %.1f\n",
					day.Date, day.Answered, day.Correct, day.Accuracy, day.MeanScore)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "User ID to report on")
	statsCmd.Flags().Int("days", 0, "Activity window in days (default 30)")
}
