package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest"
)

var (
	taskTitle       string
	taskDescription string
	taskPriority    string
	taskStatus      string
	taskCategory    string
	taskDue         string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long:  `Add a new task. Priority defaults to medium and status to todo.`,
	Run:   addTask,
}

var updateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Edit a task",
	Long:  `Change the given fields of a task. Fields without a flag keep their value.`,
	Args:  cobra.ExactArgs(1),
	Run:   updateTask,
}

var moveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Move a task to another column",
	Long:  `Set the status of a task: todo, in-progress or completed.`,
	Args:  cobra.ExactArgs(2),
	Run:   moveTask,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <task-id>",
	Short: "Toggle a task between completed and todo",
	Args:  cobra.ExactArgs(1),
	Run:   toggleTask,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run:   deleteTask,
}

func init() {
	bindTaskFlags(addCmd)
	bindTaskFlags(updateCmd)
	if err := addCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("Failed to mark title flag as required: %v", err))
	}
}

// bindTaskFlags registers the editable task fields on cmd
func bindTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&taskTitle, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&taskDescription, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&taskPriority, "priority", "p", "", "Priority: high, medium, low")
	cmd.Flags().StringVarP(&taskStatus, "status", "s", "", "Status: todo, in-progress, completed")
	cmd.Flags().StringVarP(&taskCategory, "category", "c", "", "Category name")
	cmd.Flags().StringVar(&taskDue, "due", "", "Due date (YYYY-MM-DD)")
}

func addTask(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	input := tasknest.TaskInput{
		Title:       taskTitle,
		Description: taskDescription,
		Category:    taskCategory,
		DueDate:     taskDue,
	}
	if taskPriority != "" {
		priority, err := tasknest.ParsePriority(taskPriority)
		if err != nil {
			fatal("%v", err)
		}
		input.Priority = priority
	}
	if taskStatus != "" {
		status, err := tasknest.ParseStatus(taskStatus)
		if err != nil {
			fatal("%v", err)
		}
		input.Status = status
	}
	checkDueDate(taskDue)
	if !cmd.Flags().Changed("category") && input.Category == "" {
		input.Category = defaultCategory(nest.State())
	}

	task, err := nest.AddTask(input)
	if err != nil {
		fatal("Failed to add task: %v", err)
	}

	fmt.Printf("✓ Task created: %s\n", task.ID)
	printTask(task)
}

func updateTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	var update tasknest.TaskUpdate
	flags := cmd.Flags()
	if flags.Changed("title") {
		update.Title = &taskTitle
	}
	if flags.Changed("description") {
		update.Description = &taskDescription
	}
	if flags.Changed("priority") {
		priority, err := tasknest.ParsePriority(taskPriority)
		if err != nil {
			fatal("%v", err)
		}
		update.Priority = &priority
	}
	if flags.Changed("status") {
		status, err := tasknest.ParseStatus(taskStatus)
		if err != nil {
			fatal("%v", err)
		}
		update.Status = &status
	}
	if flags.Changed("category") {
		update.Category = &taskCategory
	}
	if flags.Changed("due") {
		checkDueDate(taskDue)
		update.DueDate = &taskDue
	}
	if update.IsEmpty() {
		fatal("Nothing to update. Pass at least one of --title, --description, --priority, --status, --category, --due")
	}

	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	found, err := nest.UpdateTask(taskID, update)
	if err != nil {
		fatal("Failed to update task: %v", err)
	}
	if !found {
		fatal("Task not found: %s", taskID)
	}

	task, _ := nest.State().FindTask(taskID)
	fmt.Printf("✓ Task updated: %s\n", taskID)
	printTask(task)
}

func moveTask(cmd *cobra.Command, args []string) {
	taskID := args[0]
	status, err := tasknest.ParseStatus(args[1])
	if err != nil {
		fatal("%v", err)
	}

	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	found, err := nest.UpdateTask(taskID, tasknest.StatusUpdate(status))
	if err != nil {
		fatal("Failed to move task: %v", err)
	}
	if !found {
		fatal("Task not found: %s", taskID)
	}
	fmt.Printf("✓ Task %s moved to %s\n", taskID, status)
}

func toggleTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	task, ok := nest.State().FindTask(taskID)
	if !ok {
		fatal("Task not found: %s", taskID)
	}
	next := tasknest.NextStatus(task.Status)
	if _, err := nest.UpdateTask(taskID, tasknest.StatusUpdate(next)); err != nil {
		fatal("Failed to toggle task: %v", err)
	}

	fmt.Printf("%s Task %s is now %s\n", statusIcon(next), taskID, next)
}

func deleteTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	task, ok := nest.State().FindTask(taskID)
	if !ok {
		fatal("Task not found: %s", taskID)
	}
	nest.DeleteTask(taskID)

	fmt.Printf("✓ Task deleted: %s\n", taskID)
	fmt.Printf("  %s\n", task.Title)
}

// defaultCategory is the first category, or none when the list is empty
func defaultCategory(state tasknest.AppState) string {
	if len(state.Categories) == 0 {
		return ""
	}
	return state.Categories[0].Name
}

// checkDueDate rejects a due date the views could not read
func checkDueDate(due string) {
	if due == "" {
		return
	}
	if _, ok := tasknest.ParseDueDate(due, nil); !ok {
		fatal("Invalid due date %q (use YYYY-MM-DD)", due)
	}
}
