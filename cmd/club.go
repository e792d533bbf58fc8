package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"emelder/internal/domain"
	"emelder/internal/store"
)

var clubCmd = &cobra.Command{
	Use:   "club",
	Short: "Manage the club record",
}

var clubShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the club record",
	RunE: func(cmd *cobra.Command, args []string) error {
		club, err := store.LoadClub(cfg.ClubFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "club:    %s (#%d)\n", club.Name, club.Number)
		fmt.Fprintf(out, "sender:  %s %s, %s, %d %s\n",
			club.Sender.GivenName, club.Sender.SurName, club.Sender.Address,
			club.Sender.PostalCode, club.Sender.Town)
		fmt.Fprintf(out, "contact: private %s, public %s, mobile %s, fax %s, mail %s\n",
			club.Sender.PrivatePhone, club.Sender.PublicPhone, club.Sender.Mobile,
			club.Sender.Fax, club.Sender.Mail)
		fmt.Fprintf(out, "assoc:   %s / %s / %s / %s / %s\n",
			club.County, club.Region, club.State, club.Group, club.Nation)
		return nil
	},
}

var clubInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an empty club record to edit by hand",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfg.ClubFile); err == nil {
			return fmt.Errorf("club file already exists: %s", cfg.ClubFile)
		}
		if err := store.SaveClub(cfg.ClubFile, domain.Club{}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.ClubFile)
		return nil
	},
}

func init() {
	clubCmd.AddCommand(clubShowCmd)
	clubCmd.AddCommand(clubInitCmd)
	rootCmd.AddCommand(clubCmd)
}
