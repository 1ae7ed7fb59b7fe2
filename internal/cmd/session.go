package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/service"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage your UniHub session",
	Long:  "Log in with a browser session token, check session status, or log out",
}

var sessionLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with a session token",
	Long:  "Store a browser session token and CSRF token for API access",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSessionService()
		return svc.Login()
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSessionService()
		return svc.Status()
	},
}

var sessionLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSessionService()
		return svc.Logout()
	},
}

func init() {
	sessionCmd.AddCommand(sessionLoginCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionLogoutCmd)
}
