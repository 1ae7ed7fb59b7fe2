package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/service"
)

var (
	notifPages      int
	notifPerPage    int
	notifUnreadOnly bool
	notifRequestID  int
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Notification commands",
	Long:  "View notifications, respond to friend requests inline, and watch the badge",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewNotificationService()
		return svc.List(notifPages, notifPerPage, notifUnreadOnly)
	},
}

var notificationsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show unread notification count",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewNotificationService()
		return svc.UnreadCount()
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read [notification-id]",
	Short: "Mark notifications as read",
	Long:  "Mark one notification as read, or all of them with no argument",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewNotificationService()

		if len(args) == 0 {
			return svc.MarkAllRead()
		}

		id, err := parseID("notification-id", args[0])
		if err != nil {
			return err
		}
		return svc.MarkRead(id)
	},
}

var notificationsAcceptCmd = &cobra.Command{
	Use:   "accept [notification-id]",
	Short: "Accept a friend request from its notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("notification-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewNotificationService()
		return svc.AcceptRequest(id, notifRequestID)
	},
}

var notificationsDeclineCmd = &cobra.Command{
	Use:   "decline [notification-id]",
	Short: "Decline a friend request from its notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("notification-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewNotificationService()
		return svc.DeclineRequest(id, notifRequestID)
	},
}

var notificationsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the unread badge",
	Long:  "Poll the unread notification count and print changes until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewNotificationService()
		return svc.Watch(cmd.Context())
	},
}

func init() {
	notificationsListCmd.Flags().IntVar(&notifPages, "pages", 1, "Number of pages to load")
	notificationsListCmd.Flags().IntVar(&notifPerPage, "per-page", 15, "Results per page")
	notificationsListCmd.Flags().BoolVar(&notifUnreadOnly, "unread", false, "Show unread notifications only")

	notificationsAcceptCmd.Flags().IntVar(&notifRequestID, "request", 0, "Friend request id from the notification")
	notificationsAcceptCmd.MarkFlagRequired("request")
	notificationsDeclineCmd.Flags().IntVar(&notifRequestID, "request", 0, "Friend request id from the notification")
	notificationsDeclineCmd.MarkFlagRequired("request")

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsCountCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsAcceptCmd)
	notificationsCmd.AddCommand(notificationsDeclineCmd)
	notificationsCmd.AddCommand(notificationsWatchCmd)
}
