package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = prompt("Username"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password"); err != nil {
					return err
				}
			}

			c := apiClient()
			result, err := c.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			fmt.Printf("Logged in as %s\n", result.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient().Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newChangePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the admin password",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}

			oldPassword, err := prompt("Old password")
			if err != nil {
				return err
			}
			newPassword, err := prompt("New password")
			if err != nil {
				return err
			}
			confirmPassword, err := prompt("Repeat new password")
			if err != nil {
				return err
			}

			if len(newPassword) < 6 {
				return fmt.Errorf("new password must be at least 6 characters")
			}
			if newPassword != confirmPassword {
				return fmt.Errorf("passwords do not match")
			}

			if err := c.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
				return err
			}
			fmt.Println("Password changed.")
			return nil
		},
	}
}
