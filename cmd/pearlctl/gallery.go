package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pearlatelier/pearlsite-go/pkg/client"
	"github.com/spf13/cobra"
)

func newGalleryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage the inspiration gallery",
	}
	cmd.AddCommand(
		newGalleryListCmd(),
		newGalleryUploadCmd(),
		newGalleryUpdateCmd(),
		newGalleryDeleteCmd(),
		newGalleryMoveCmd(),
	)
	return cmd
}

func newGalleryListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gallery images",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := apiClient()
			if all {
				var err error
				if c, err = requireLogin(); err != nil {
					return err
				}
			}
			images, err := c.ListGallery(cmd.Context(), all)
			if err != nil {
				return err
			}
			for _, img := range images {
				visibility := "visible"
				if !img.IsVisible {
					visibility = "hidden"
				}
				fmt.Printf("%4d  #%-3d  %-40s  %-20s  %s\n", img.ID, img.OrderIndex, img.Path, img.Title, visibility)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include hidden images (requires login)")
	return cmd
}

func newGalleryUploadCmd() *cobra.Command {
	var title, titleEn, alt string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a gallery image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			img, err := c.UploadGalleryImage(cmd.Context(), client.UploadFile{
				Name:   filepath.Base(args[0]),
				Reader: f,
			}, title, titleEn, alt)
			if err != nil {
				return err
			}
			fmt.Printf("Uploaded %s (id %d, position %d)\n", img.Path, img.ID, img.OrderIndex)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title (Chinese)")
	cmd.Flags().StringVar(&titleEn, "title-en", "", "title (English)")
	cmd.Flags().StringVar(&alt, "alt", "", "alt text")
	return cmd
}

func newGalleryUpdateCmd() *cobra.Command {
	var input client.GalleryInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a gallery image's titles or visibility",
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

			images, err := c.ListGallery(cmd.Context(), true)
			if err != nil {
				return err
			}
			var current *client.GalleryImage
			for i := range images {
				if images[i].ID == id {
					current = &images[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("gallery image %d not found", id)
			}

			merged := client.GalleryInput{
				Title:     current.Title,
				TitleEn:   current.TitleEn,
				Alt:       current.Alt,
				IsVisible: &current.IsVisible,
			}
			if cmd.Flags().Changed("title") {
				merged.Title = input.Title
			}
			if cmd.Flags().Changed("title-en") {
				merged.TitleEn = input.TitleEn
			}
			if cmd.Flags().Changed("alt") {
				merged.Alt = input.Alt
			}
			if v := boolFlagValue(cmd, "visible"); v != nil {
				merged.IsVisible = v
			}

			img, err := c.UpdateGalleryImage(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("Updated gallery image %d\n", img.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "title (Chinese)")
	cmd.Flags().StringVar(&input.TitleEn, "title-en", "", "title (English)")
	cmd.Flags().StringVar(&input.Alt, "alt", "", "alt text")
	cmd.Flags().Bool("visible", true, "show on the public site")
	return cmd
}

func newGalleryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a gallery image",
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
			if !confirm(fmt.Sprintf("Delete gallery image %d?", id)) {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := c.DeleteGalleryImage(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted gallery image %d\n", id)
			return nil
		},
	}
}

func newGalleryMoveCmd() *cobra.Command {
	var up, down bool

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a gallery image up or down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if up == down {
				return fmt.Errorf("specify exactly one of --up or --down")
			}
			c, err := requireLogin()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			images, err := c.ListGallery(cmd.Context(), true)
			if err != nil {
				return err
			}
			sort.Slice(images, func(i, j int) bool {
				return images[i].OrderIndex < images[j].OrderIndex
			})

			ids := make([]int64, len(images))
			for i, img := range images {
				ids[i] = img.ID
			}

			order, err := reorderAfterMove(ids, id, up)
			if err != nil {
				return err
			}
			if err := c.ReorderGallery(cmd.Context(), order); err != nil {
				return err
			}
			fmt.Printf("Moved gallery image %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&up, "up", false, "move one position earlier")
	cmd.Flags().BoolVar(&down, "down", false, "move one position later")
	return cmd
}
