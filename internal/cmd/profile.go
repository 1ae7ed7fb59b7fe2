package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/service"
)

var profileEditFields []string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
	Long:  "View your profile, edit it section by section, and manage your photo",
}

var profileViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.View()
	},
}

var profileSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List editable profile sections",
	Run: func(cmd *cobra.Command, args []string) {
		svc := service.NewProfileService()
		svc.Sections()
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit [section]",
	Short: "Edit one profile section",
	Long: `Edit one profile section (basic, personal, academic, contact, about).

Without --field flags the fields are prompted for interactively.
With --field the update is non-interactive:

  unihub-cli profile edit contact --field telegram=@my_handle
  unihub-cli profile edit basic --field name=Maria --field surname=Kim`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()

		if len(profileEditFields) == 0 {
			return svc.EditSectionInteractive(args[0])
		}

		values := make(map[string]string, len(profileEditFields))
		for _, pair := range profileEditFields {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				return errors.ValidationError("field", "must be name=value, got "+pair)
			}
			values[name] = value
		}
		return svc.EditSection(args[0], values)
	},
}

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage your profile photo",
}

var photoUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a profile photo",
	Long:  "Upload a new profile photo (png, jpg, jpeg, or webp, up to 5MB, 3 uploads per day)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.UploadPhoto(args[0])
	},
}

var photoDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your photo and revert to the default",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.DeletePhoto()
	},
}

var photoStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your daily photo upload quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService()
		return svc.PhotoStats()
	},
}

func init() {
	profileEditCmd.Flags().StringArrayVar(&profileEditFields, "field", nil, "Field to set as name=value (repeatable)")

	photoCmd.AddCommand(photoUploadCmd)
	photoCmd.AddCommand(photoDeleteCmd)
	photoCmd.AddCommand(photoStatsCmd)

	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileSectionsCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(photoCmd)
}
