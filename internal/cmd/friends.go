package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/service"
)

var (
	friendsPage    int
	friendsPerPage int
	friendsUserID  int
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Manage friends and friend requests",
	Long:  "Send, accept, and decline friend requests, and list friends",
}

func parseID(name, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.ValidationError(name, "must be a positive integer, got "+raw)
	}
	return id, nil
}

var friendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List friends",
	Long:  "List your friends, or another student's with --user",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewFriendService()
		return svc.List(friendsPage, friendsPerPage, friendsUserID)
	},
}

var friendsStatusCmd = &cobra.Command{
	Use:   "status [user-id]",
	Short: "Show friendship status with a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID("user-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewFriendService()
		return svc.Status(userID)
	},
}

var friendsAddCmd = &cobra.Command{
	Use:   "add [user-id]",
	Short: "Send a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID("user-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewFriendService()
		return svc.Add(userID)
	},
}

var friendsAcceptCmd = &cobra.Command{
	Use:   "accept [request-id]",
	Short: "Accept a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requestID, err := parseID("request-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewFriendService()
		return svc.Accept(requestID)
	},
}

var friendsDeclineCmd = &cobra.Command{
	Use:   "decline [request-id]",
	Short: "Decline a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requestID, err := parseID("request-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewFriendService()
		return svc.Decline(requestID)
	},
}

var friendsRemoveCmd = &cobra.Command{
	Use:   "remove [user-id]",
	Short: "Remove a friend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID("user-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewFriendService()
		return svc.Remove(userID)
	},
}

func init() {
	friendsListCmd.Flags().IntVar(&friendsPage, "page", 1, "Page number")
	friendsListCmd.Flags().IntVar(&friendsPerPage, "per-page", 20, "Results per page")
	friendsListCmd.Flags().IntVar(&friendsUserID, "user", 0, "List another student's friends")

	friendsCmd.AddCommand(friendsListCmd)
	friendsCmd.AddCommand(friendsStatusCmd)
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsAcceptCmd)
	friendsCmd.AddCommand(friendsDeclineCmd)
	friendsCmd.AddCommand(friendsRemoveCmd)
}
