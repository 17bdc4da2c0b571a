package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adminbuddy/internal/letter"
	"adminbuddy/internal/store"
)

var (
	profName    string
	profPhone   string
	profEmail   string
	profAddress string
)

// profileCmd manages the sender profile used for letter signatures.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the sender profile",
	Long: `Show or edit the sender profile.

The profile fills in the signature of every generated letter. A missing
name is rendered as the [Dit navn] placeholder so the letter is still
usable after printing.`,
	RunE: runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields",
	RunE:  runProfileSet,
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved profile",
	RunE:  runProfileClear,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	p := store.NewProfileStore(cfg.Storage.DataDir, logger).Load()
	if p.Empty() {
		fmt.Println("No profile saved.")
		return nil
	}
	fmt.Printf("Name:    %s\nPhone:   %s\nEmail:   %s\nAddress: %s\n",
		p.Name, p.Phone, p.Email, p.Address)
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	st := store.NewProfileStore(cfg.Storage.DataDir, logger)
	p := st.Load()
	if cmd.Flags().Changed("name") {
		p.Name = profName
	}
	if cmd.Flags().Changed("phone") {
		p.Phone = profPhone
	}
	if cmd.Flags().Changed("email") {
		p.Email = profEmail
	}
	if cmd.Flags().Changed("address") {
		p.Address = profAddress
	}
	st.Save(p)
	fmt.Println("Profile saved.")
	return nil
}

func runProfileClear(cmd *cobra.Command, args []string) error {
	store.NewProfileStore(cfg.Storage.DataDir, logger).Save(letter.Profile{})
	fmt.Println("Profile cleared.")
	return nil
}

func init() {
	profileSetCmd.Flags().StringVar(&profName, "name", "", "sender name")
	profileSetCmd.Flags().StringVar(&profPhone, "phone", "", "sender phone")
	profileSetCmd.Flags().StringVar(&profEmail, "email", "", "sender email")
	profileSetCmd.Flags().StringVar(&profAddress, "address", "", "sender address")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileClearCmd)
}
