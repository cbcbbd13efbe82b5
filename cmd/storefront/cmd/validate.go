package cmd

import (
	"fmt"

	"github.com/clonecoding/storefront/internal/validation"
	"github.com/spf13/cobra"
)

var accountOpts struct {
	email    string
	password string
	nickname string
}

var cardCmd = &cobra.Command{
	Use:   "card <number>",
	Short: "Identify the issuer of a card number and format it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := validation.DescribeCard(args[0])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "issuer:    %s\n", s.Type)
		fmt.Fprintf(out, "digits:    %d\n", s.Digits)
		fmt.Fprintf(out, "formatted: %s\n", s.Formatted)
		fmt.Fprintf(out, "complete:  %t\n", s.Complete)
		return nil
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Check sign-up fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		if !flags.Changed("email") && !flags.Changed("password") && !flags.Changed("nickname") {
			return fmt.Errorf("at least one of --email, --password or --nickname is required")
		}

		out := cmd.OutOrStdout()
		if flags.Changed("email") {
			fmt.Fprintf(out, "email:    %s\n", verdict(validation.IsValidEmail(accountOpts.email), validation.EmailInProgress(accountOpts.email)))
		}
		if flags.Changed("password") {
			fmt.Fprintf(out, "password: %s\n", verdict(validation.IsValidPassword(accountOpts.password), validation.PasswordInProgress(accountOpts.password)))
		}
		if flags.Changed("nickname") {
			fmt.Fprintf(out, "nickname: %s\n", verdict(validation.IsValidNickname(accountOpts.nickname), validation.NicknameInProgress(accountOpts.nickname)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(accountCmd)

	accountCmd.Flags().StringVar(&accountOpts.email, "email", "", "email address")
	accountCmd.Flags().StringVar(&accountOpts.password, "password", "", "password")
	accountCmd.Flags().StringVar(&accountOpts.nickname, "nickname", "", "nickname")
}

func verdict(valid, inProgress bool) string {
	switch {
	case valid:
		return "valid"
	case inProgress:
		return "incomplete"
	default:
		return "invalid"
	}
}
