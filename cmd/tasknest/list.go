package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest"
)

var (
	statusFilter   string
	categoryFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long:  `List tasks with their status, priority, category and due date.`,
	Run:   listTasks,
}

func init() {
	listCmd.Flags().StringVarP(&statusFilter, "status", "s", "", "Filter by status: todo (or pending), in-progress, completed")
	listCmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "Filter by category name")
}

func listTasks(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	var status tasknest.Status
	if statusFilter != "" {
		parsed, err := tasknest.ParseStatus(statusFilter)
		if err != nil {
			fatal("Invalid status filter %q (use todo, pending, in-progress or completed)", statusFilter)
		}
		status = parsed
	}

	var tasks []tasknest.Task
	for _, task := range nest.State().Tasks {
		if status != "" && task.Status != status {
			continue
		}
		if categoryFilter != "" && task.Category != categoryFilter {
			continue
		}
		tasks = append(tasks, task)
	}

	if len(tasks) == 0 {
		if statusFilter != "" || categoryFilter != "" {
			fmt.Println("No matching tasks found.")
			return
		}
		fmt.Println("No tasks found.")
		return
	}

	// newest first
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	fmt.Println("📋 Tasks:")
	fmt.Println()
	for _, task := range tasks {
		printTask(task)
	}
}
