package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/service"
)

var (
	voiceFaculty string
	voiceSort    string
	voicePages   int
	voicePerPage int
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Faculty voice board",
	Long:  "Read and post on your faculty's voice board, and like posts",
}

var voiceFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the voice board feed",
	Long:  "Show your faculty group's voice board, sorted by likes or shuffled",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewVoiceService()
		return svc.Feed(voiceFaculty, voiceSort, voicePages, voicePerPage)
	},
}

var voicePostCmd = &cobra.Command{
	Use:   "post [text]",
	Short: "Post to your voice board",
	Long:  "Create or replace your post (up to 100 characters, 5 edits per hour)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewVoiceService()
		return svc.Compose(args[0], voiceFaculty)
	},
}

var voiceMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show your current post",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewVoiceService()
		return svc.MyPost()
	},
}

var voiceDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your post",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewVoiceService()
		return svc.DeletePost(voiceFaculty)
	},
}

var voiceLikeCmd = &cobra.Command{
	Use:   "like [post-id]",
	Short: "Toggle a like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID("post-id", args[0])
		if err != nil {
			return err
		}
		svc := service.NewVoiceService()
		return svc.Like(postID)
	},
}

var voiceInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show your faculty and board group",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewVoiceService()
		return svc.UserInfo()
	},
}

func init() {
	voiceCmd.PersistentFlags().StringVar(&voiceFaculty, "faculty", "", "Faculty or board group (defaults to your own)")
	voiceFeedCmd.Flags().StringVar(&voiceSort, "sort", "most_liked", "Sort order: most_liked or random")
	voiceFeedCmd.Flags().IntVar(&voicePages, "pages", 1, "Number of pages to load")
	voiceFeedCmd.Flags().IntVar(&voicePerPage, "per-page", 10, "Results per page")

	voiceCmd.AddCommand(voiceFeedCmd)
	voiceCmd.AddCommand(voicePostCmd)
	voiceCmd.AddCommand(voiceMeCmd)
	voiceCmd.AddCommand(voiceDeleteCmd)
	voiceCmd.AddCommand(voiceLikeCmd)
	voiceCmd.AddCommand(voiceInfoCmd)
}
