package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tasknest",
	Short: "TaskNest - personal task manager",
	Long: `TaskNest keeps your tasks, categories and preferences in the current
workspace. Use --workspace to point at another directory and --storage to pick
the backend (file, bolt, sqlite or memory).`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "Storage backend: file, bolt, sqlite, memory")

	rootCmd.AddCommand(loginCmd, logoutCmd)
	rootCmd.AddCommand(addCmd, updateCmd, moveCmd, toggleCmd, deleteCmd, listCmd)
	rootCmd.AddCommand(dashboardCmd, kanbanCmd, showCmd, viewCmd, darkModeCmd)
	rootCmd.AddCommand(categoryCmd, statsCmd, remindCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
