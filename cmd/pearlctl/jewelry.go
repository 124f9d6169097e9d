package main

import (
	"fmt"
	"strconv"

	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/pkg/client"
	"github.com/spf13/cobra"
)

func newJewelryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jewelry",
		Short: "Manage catalog pieces",
	}
	cmd.AddCommand(
		newJewelryListCmd(),
		newJewelryShowCmd(),
		newJewelryCreateCmd(),
		newJewelryUpdateCmd(),
		newJewelryDeleteCmd(),
		newJewelryCategoryCmd(),
	)
	return cmd
}

func newJewelryListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog pieces",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := apiClient()
			items, err := c.ListJewelry(cmd.Context(), all)
			if err != nil {
				return err
			}
			for _, item := range items {
				visibility := "visible"
				if !item.IsVisible {
					visibility = "hidden"
				}
				featured := ""
				if item.IsFeatured {
					featured = " *featured"
				}
				fmt.Printf("%4d  %-24s  %-20s  %d images  %s%s\n",
					item.ID, item.Name, item.Category, len(item.Images), visibility, featured)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include hidden pieces (requires login)")
	return cmd
}

func newJewelryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one piece with its images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			item, err := apiClient().GetJewelry(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("ID:          %d\n", item.ID)
			fmt.Printf("Name:        %s / %s\n", item.Name, item.NameEn)
			fmt.Printf("Category:    %s\n", item.Category)
			fmt.Printf("Visible:     %v   Featured: %v   Order: %d\n", item.IsVisible, item.IsFeatured, item.OrderIndex)
			fmt.Printf("Description: %s\n", item.Description)
			for _, img := range item.Images {
				fmt.Printf("  image %d: %s\n", img.ID, img.Path)
			}
			return nil
		},
	}
}

func jewelryFlags(cmd *cobra.Command, input *client.JewelryInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "name (Chinese)")
	cmd.Flags().StringVar(&input.NameEn, "name-en", "", "name (English)")
	cmd.Flags().StringVar(&input.Category, "category", "", "comma-joined category tokens")
	cmd.Flags().StringVar(&input.Description, "description", "", "description (Chinese)")
	cmd.Flags().StringVar(&input.DescriptionEn, "description-en", "", "description (English)")
	cmd.Flags().IntVar(&input.OrderIndex, "order", 0, "display order index")
}

func boolFlagValue(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetBool(name)
	return &value
}

func newJewelryCreateCmd() *cobra.Command {
	var input client.JewelryInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a catalog piece",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			if input.Name == "" {
				return fmt.Errorf("--name is required")
			}
			input.IsVisible = boolFlagValue(cmd, "visible")
			input.IsFeatured = boolFlagValue(cmd, "featured")

			item, err := c.CreateJewelry(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created jewelry %d (%s)\n", item.ID, item.Name)
			return nil
		},
	}

	jewelryFlags(cmd, &input)
	cmd.Flags().Bool("visible", true, "show on the public site")
	cmd.Flags().Bool("featured", false, "feature on the home page")
	return cmd
}

func newJewelryUpdateCmd() *cobra.Command {
	var input client.JewelryInput
	var translateAssist bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog piece (full record submit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			current, err := c.GetJewelry(cmd.Context(), id)
			if err != nil {
				return err
			}

			// Start from the stored record, overlay changed flags.
			merged := client.JewelryInput{
				Name:          current.Name,
				NameEn:        current.NameEn,
				Category:      current.Category,
				Description:   current.Description,
				DescriptionEn: current.DescriptionEn,
				OrderIndex:    current.OrderIndex,
				IsVisible:     &current.IsVisible,
				IsFeatured:    &current.IsFeatured,
			}
			if cmd.Flags().Changed("name") {
				merged.Name = input.Name
			}
			if cmd.Flags().Changed("name-en") {
				merged.NameEn = input.NameEn
			}
			if cmd.Flags().Changed("category") {
				merged.Category = input.Category
			}
			if cmd.Flags().Changed("description") {
				merged.Description = input.Description
			}
			if cmd.Flags().Changed("description-en") {
				merged.DescriptionEn = input.DescriptionEn
			}
			if cmd.Flags().Changed("order") {
				merged.OrderIndex = input.OrderIndex
			}
			if v := boolFlagValue(cmd, "visible"); v != nil {
				merged.IsVisible = v
			}
			if v := boolFlagValue(cmd, "featured"); v != nil {
				merged.IsFeatured = v
			}

			// Fill the English fields by machine translation when asked
			// and they are empty. A failure is a notice, never a block.
			if translateAssist {
				if merged.NameEn == "" && merged.Name != "" {
					if translated, err := c.Translate(cmd.Context(), merged.Name); err == nil {
						merged.NameEn = translated
					} else {
						fmt.Printf("Note: translation unavailable (%v)\n", err)
					}
				}
				if merged.DescriptionEn == "" && merged.Description != "" {
					if translated, err := c.Translate(cmd.Context(), merged.Description); err == nil {
						merged.DescriptionEn = translated
					}
				}
			}

			item, err := c.UpdateJewelry(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("Updated jewelry %d (%s)\n", item.ID, item.Name)
			return nil
		},
	}

	jewelryFlags(cmd, &input)
	cmd.Flags().Bool("visible", true, "show on the public site")
	cmd.Flags().Bool("featured", false, "feature on the home page")
	cmd.Flags().BoolVar(&translateAssist, "translate", false, "fill empty English fields by machine translation")
	return cmd
}

func newJewelryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a catalog piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if !confirm(fmt.Sprintf("Delete jewelry %d?", id)) {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := c.DeleteJewelry(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted jewelry %d\n", id)
			return nil
		},
	}
}

func newJewelryCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <id> <token>",
		Short: "Toggle a category token on a piece",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			current, err := c.GetJewelry(cmd.Context(), id)
			if err != nil {
				return err
			}

			input := client.JewelryInput{
				Name:          current.Name,
				NameEn:        current.NameEn,
				Category:      content.ToggleCategory(current.Category, args[1]),
				Description:   current.Description,
				DescriptionEn: current.DescriptionEn,
				OrderIndex:    current.OrderIndex,
				IsVisible:     &current.IsVisible,
				IsFeatured:    &current.IsFeatured,
			}
			item, err := c.UpdateJewelry(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			fmt.Printf("Categories for %d: %s\n", item.ID, item.Category)
			return nil
		},
	}
}
