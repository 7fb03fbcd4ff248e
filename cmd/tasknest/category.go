package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest"
	"github.com/fmizzell/tasknest/internal/render"
)

var (
	categoryName  string
	categoryColor string
	categoryIcon  string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Long:  `Add a category. Unknown icon names are drawn with the star icon.`,
	Run:   addCategory,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their open task counts",
	Run:   listCategories,
}

func init() {
	categoryAddCmd.Flags().StringVarP(&categoryName, "name", "n", "", "Category name (required)")
	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "#6B7280", "Color as #RRGGBB")
	categoryAddCmd.Flags().StringVar(&categoryIcon, "icon", string(tasknest.FallbackIcon), "Icon: "+iconNames())
	if err := categoryAddCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("Failed to mark name flag as required: %v", err))
	}

	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd)
}

func addCategory(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()

	category := nest.AddCategory(tasknest.CategoryInput{
		Name:  categoryName,
		Color: categoryColor,
		Icon:  categoryIcon,
	})

	fmt.Printf("✓ Category created: %s %s\n", render.IconGlyph(category.IconOf()), category.Name)
}

func listCategories(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()

	state := nest.State()
	if len(state.Categories) == 0 {
		fmt.Println("No categories found.")
		return
	}
	for _, category := range state.Categories {
		fmt.Printf("%s %s  %s  open: %d\n",
			render.IconGlyph(category.IconOf()),
			category.Name,
			category.Color,
			tasknest.OpenTaskCount(state.Tasks, category.Name))
	}
}

func iconNames() string {
	names := make([]string, 0, len(tasknest.Icons))
	for _, icon := range tasknest.Icons {
		names = append(names, string(icon))
	}
	return strings.Join(names, ", ")
}
