package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unihub/cli/pkg/service"
)

var (
	studentsFaculty     string
	studentsLevel       string
	studentsPages       int
	studentsPerPage     int
	studentsInteractive bool
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Browse and search the student directory",
	Long:  "Browse students with faculty and level filters, or search by name",
}

var studentsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the student directory",
	Long:  "Load one or more directory pages, deduplicated across pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDirectoryService()
		return svc.Browse(studentsFaculty, studentsLevel, studentsPages, studentsPerPage)
	},
}

var studentsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search students by name",
	Long:  "Search students by name or surname (two characters minimum). With --interactive, queries are read line by line and debounced like the search box.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDirectoryService()
		if studentsInteractive {
			return svc.SearchInteractive()
		}
		if len(args) == 0 {
			return cmd.Usage()
		}
		return svc.Search(args[0])
	},
}

func init() {
	studentsBrowseCmd.Flags().StringVar(&studentsFaculty, "faculty", "all", "Filter by faculty (ICE, CSE, SBL_B, SBL_L)")
	studentsBrowseCmd.Flags().StringVar(&studentsLevel, "level", "all", "Filter by level (Freshman, Sophomore, Junior, Senior)")
	studentsBrowseCmd.Flags().IntVar(&studentsPages, "pages", 1, "Number of pages to load")
	studentsBrowseCmd.Flags().IntVar(&studentsPerPage, "per-page", 12, "Results per page")
	studentsSearchCmd.Flags().BoolVarP(&studentsInteractive, "interactive", "i", false, "Read queries line by line with debounced dispatch")

	studentsCmd.AddCommand(studentsBrowseCmd)
	studentsCmd.AddCommand(studentsSearchCmd)
}
