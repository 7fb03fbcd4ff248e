package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	Long:  `Sign in with an email and password. Any non-empty pair is accepted.`,
	Run:   login,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Long:  `Sign out and clear the displayed tasks. Saved tasks are restored on the next run.`,
	Run:   logout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
}

func login(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()

	user, err := nest.Login(loginEmail, loginPassword)
	if errors.Is(err, tasknest.ErrInvalidCredentials) {
		fatal("Email and password are required")
	}
	if err != nil {
		fatal("Login failed: %v", err)
	}

	fmt.Printf("✓ Signed in as %s (%s)\n", user.Name, user.Email)
}

func logout(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()

	if nest.State().User == nil {
		fmt.Println("Not signed in.")
		return
	}
	nest.Logout()
	fmt.Println("✓ Signed out")
}
