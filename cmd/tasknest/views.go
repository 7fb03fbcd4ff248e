package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest"
	"github.com/fmizzell/tasknest/internal/render"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard",
	Long:  `Show task counters, recent tasks and upcoming deadlines.`,
	Run:   showDashboard,
}

var kanbanCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Show the kanban board",
	Run:   showKanban,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the full page for the selected view",
	Long:  `Show the sidebar, the signed-in user and the view chosen with "tasknest view".`,
	Run:   showPage,
}

var viewCmd = &cobra.Command{
	Use:       "view <dashboard|kanban>",
	Short:     "Select the view shown by \"tasknest show\"",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(tasknest.ViewDashboard), string(tasknest.ViewKanban)},
	Run:       selectView,
}

var darkModeCmd = &cobra.Command{
	Use:   "dark-mode",
	Short: "Toggle dark mode",
	Run:   toggleDarkMode,
}

func showDashboard(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	fmt.Println(render.Dashboard(nest.State(), clock()))
}

func showKanban(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	fmt.Println(render.Kanban(nest.State(), clock()))
}

func showPage(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	fmt.Println(render.Page(nest.State(), clock()))
}

func selectView(cmd *cobra.Command, args []string) {
	view, err := tasknest.ParseView(args[0])
	if err != nil {
		fatal("Unknown view %q (use dashboard or kanban)", args[0])
	}

	nest, release := mustOpenNest()
	defer release()

	nest.SetView(view)
	fmt.Printf("✓ View set to %s\n", view)
}

func toggleDarkMode(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()

	nest.ToggleDarkMode()
	mode := "off"
	if nest.State().DarkMode {
		mode = "on"
	}
	fmt.Printf("✓ Dark mode %s\n", mode)
}
