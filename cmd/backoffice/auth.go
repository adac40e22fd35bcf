package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MbolafyDev/go-backoffice/tokens"
	"github.com/MbolafyDev/go-backoffice/users"
)

func loginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayAppname(a.cfg.GetAppName())

			if email == "" {
				fmt.Print("Email: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Print("Password: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			if err := a.session.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("%s", a.session.LastError())
			}

			user := a.session.User()
			fmt.Printf("Logged in as %s (%s)\n", user.FullName(), user.Role)
			fmt.Printf("Start page: %s\n", users.DefaultRouteForRole(user.Role))
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session locally and on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout(cmd.Context())
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.RestoreFromStorage(cmd.Context())
			user := a.session.User()
			if user == nil {
				return fmt.Errorf("not logged in")
			}
			fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Role:     %s\n", user.Role)
			return nil
		},
	}
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored credential state without calling the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			access := a.tokens.Access()
			refresh := a.tokens.Refresh()
			if access == "" && refresh == "" {
				fmt.Println("No stored credentials.")
				return nil
			}
			if access == "" {
				fmt.Println("Access token: none")
			} else if exp, err := tokens.ExpiresAt(access); err != nil {
				fmt.Println("Access token: present (undecodable)")
			} else if tokens.Expired(access) {
				fmt.Printf("Access token: expired at %s (will be renewed on next call)\n", exp.Format("2006-01-02 15:04:05"))
			} else {
				fmt.Printf("Access token: valid until %s\n", exp.Format("2006-01-02 15:04:05"))
			}
			if refresh == "" {
				fmt.Println("Refresh token: none")
			} else {
				fmt.Println("Refresh token: present")
			}
			return nil
		},
	}
}
