package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"emelder/internal/domain"
	"emelder/internal/log"
	"emelder/internal/store"
)

var (
	addGiven  string
	addSur    string
	addBelt   string
	addYear   uint16
	addGender string

	promoteYear uint16
)

var athletesCmd = &cobra.Command{
	Use:   "athletes",
	Short: "Manage the athlete registry",
}

var athletesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all athletes in the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		athletes, err := store.LoadAthletes(cfg.AthletesFile)
		if err != nil {
			return err
		}
		for _, a := range athletes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%d\t%s\n",
				a.GivenName, a.SurName, a.Belt.Key(), a.BirthYear, a.Gender.Code())
		}
		return nil
	},
}

var athletesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an athlete to the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		belt, err := domain.ParseBelt(addBelt)
		if err != nil {
			return err
		}
		gender, err := domain.ParseGenderCategory(addGender)
		if err != nil {
			return err
		}

		athletes, err := store.LoadAthletes(cfg.AthletesFile)
		if err != nil {
			return err
		}
		athletes = append(athletes, domain.NewAthlete(addGiven, addSur, belt, addYear, gender))
		if err := store.SaveAthletes(cfg.AthletesFile, athletes); err != nil {
			return err
		}

		log.Info(log.CatCLI, "Added athlete", "name", addGiven+" "+addSur, "belt", belt)
		fmt.Fprintf(cmd.OutOrStdout(), "added %s %s (%s, %d)\n", addGiven, addSur, belt, addYear)
		return nil
	},
}

var athletesPromoteCmd = &cobra.Command{
	Use:   "promote \"Given Sur\"",
	Short: "Promote an athlete to the next belt",
	Long: `Promote an athlete to the next belt. Promotion saturates at dan10;
promoting a dan10 athlete changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		athletes, err := store.LoadAthletes(cfg.AthletesFile)
		if err != nil {
			return err
		}

		idx := -1
		for i, a := range athletes {
			if a.GivenName+" "+a.SurName != args[0] {
				continue
			}
			if promoteYear != 0 && a.BirthYear != promoteYear {
				continue
			}
			if idx >= 0 {
				return fmt.Errorf("athlete %q is ambiguous, use --year", args[0])
			}
			idx = i
		}
		if idx < 0 {
			return fmt.Errorf("athlete %q not found in registry", args[0])
		}

		before := athletes[idx].Belt
		athletes[idx].Belt = before.Inc()
		if err := store.SaveAthletes(cfg.AthletesFile, athletes); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", args[0], before, athletes[idx].Belt)
		return nil
	},
}

func init() {
	athletesAddCmd.Flags().StringVar(&addGiven, "given", "", "given name (required)")
	athletesAddCmd.Flags().StringVar(&addSur, "sur", "", "surname (required)")
	athletesAddCmd.Flags().StringVar(&addBelt, "belt", "kyu9", "belt key, kyu9..dan10")
	athletesAddCmd.Flags().Uint16Var(&addYear, "year", 0, "birth year (required)")
	athletesAddCmd.Flags().StringVar(&addGender, "gender", "g", "gender code: g, m or w")
	_ = athletesAddCmd.MarkFlagRequired("given")
	_ = athletesAddCmd.MarkFlagRequired("sur")
	_ = athletesAddCmd.MarkFlagRequired("year")

	athletesPromoteCmd.Flags().Uint16Var(&promoteYear, "year", 0, "birth year to disambiguate")

	athletesCmd.AddCommand(athletesListCmd)
	athletesCmd.AddCommand(athletesAddCmd)
	athletesCmd.AddCommand(athletesPromoteCmd)
	rootCmd.AddCommand(athletesCmd)
}
