package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/u-share/sortflow/internal/cli"
	"github.com/u-share/sortflow/internal/model"
	"github.com/u-share/sortflow/internal/router"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the platform",
		RunE:  runLogin,
	}

	cmd.Flags().StringP("username", "u", "", "account username")
	cmd.Flags().StringP("password", "p", "", "account password (prompted if omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.guardRoute(router.PathLogin); err != nil {
		return err
	}

	creds, err := readCredentials(cmd)
	if err != nil {
		return err
	}

	if err := a.session.Login(cmd.Context(), creds); err != nil {
		return err
	}

	user := a.session.User()
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Logged in as %s", user.Username)))
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the saved session",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.session.Logout()
			fmt.Println(cli.InfoStyle.Render("Logged out"))
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE:  runRegister,
	}

	cmd.Flags().StringP("username", "u", "", "desired username")
	cmd.Flags().StringP("password", "p", "", "account password (prompted if omitted)")

	return cmd
}

func runRegister(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.guardRoute(router.PathRegister); err != nil {
		return err
	}

	creds, err := readCredentials(cmd)
	if err != nil {
		return err
	}

	user, err := a.session.Register(cmd.Context(), creds)
	if err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Account %s created, you can now log in", user.Username)))
	return nil
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.guardRoute(router.PathDashboard); err != nil {
				return err
			}

			if err := a.session.RefreshProfile(cmd.Context()); err != nil {
				return err
			}

			user := a.session.User()
			fmt.Printf("%s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
}

func readCredentials(cmd *cobra.Command) (model.Credentials, error) {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	reader := bufio.NewReader(cmd.InOrStdin())

	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return model.Credentials{}, fmt.Errorf("failed to read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return model.Credentials{}, fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}

	return model.Credentials{Username: username, Password: password}, nil
}
