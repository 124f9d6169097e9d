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

func newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage the jewelry image pool",
	}
	cmd.AddCommand(
		newImagesListCmd(),
		newImagesUploadCmd(),
		newImagesAssignCmd(),
		newImagesDeleteCmd(),
		newImagesMoveCmd(),
	)
	return cmd
}

func newImagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pool images",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			images, err := c.ListImages(cmd.Context())
			if err != nil {
				return err
			}
			for _, img := range images {
				assigned := "unassigned"
				if img.JewelryID != nil {
					assigned = fmt.Sprintf("jewelry %d #%d", *img.JewelryID, img.OrderIndex)
				}
				fmt.Printf("%4d  %-40s  %s\n", img.ID, img.Path, assigned)
			}
			return nil
		},
	}
}

func newImagesUploadCmd() *cobra.Command {
	var jewelryID int64

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload image files to the pool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}

			files := make([]client.UploadFile, 0, len(args))
			handles := make([]*os.File, 0, len(args))
			defer func() {
				for _, f := range handles {
					f.Close()
				}
			}()
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				handles = append(handles, f)
				files = append(files, client.UploadFile{Name: filepath.Base(path), Reader: f})
			}

			var assign *int64
			if cmd.Flags().Changed("jewelry") {
				assign = &jewelryID
			}

			uploaded, err := c.UploadImages(cmd.Context(), files, assign)
			if err != nil {
				return err
			}
			for _, img := range uploaded {
				fmt.Printf("Uploaded %s -> %s (id %d)\n", img.OriginalName, img.Path, img.ID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&jewelryID, "jewelry", 0, "assign uploads to this jewelry id")
	return cmd
}

func newImagesAssignCmd() *cobra.Command {
	var unassign bool

	cmd := &cobra.Command{
		Use:   "assign <image-id> [jewelry-id]",
		Short: "Assign an image to a piece, or release it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			imageID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid image id %q", args[0])
			}

			images, err := c.ListImages(cmd.Context())
			if err != nil {
				return err
			}
			var current *client.Image
			for i := range images {
				if images[i].ID == imageID {
					current = &images[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("image %d not found", imageID)
			}

			input := client.ImageInput{
				Description:   current.Description,
				DescriptionEn: current.DescriptionEn,
				OrderIndex:    current.OrderIndex,
			}
			if !unassign {
				if len(args) < 2 {
					return fmt.Errorf("jewelry id required unless --unassign is set")
				}
				jewelryID, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid jewelry id %q", args[1])
				}
				input.JewelryID = &jewelryID
			}

			img, err := c.UpdateImage(cmd.Context(), imageID, input)
			if err != nil {
				return err
			}
			if img.JewelryID != nil {
				fmt.Printf("Image %d assigned to jewelry %d\n", img.ID, *img.JewelryID)
			} else {
				fmt.Printf("Image %d released to the pool\n", img.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unassign, "unassign", false, "release the image back to the pool")
	return cmd
}

func newImagesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pool image",
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
			if !confirm(fmt.Sprintf("Delete image %d?", id)) {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := c.DeleteImage(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted image %d\n", id)
			return nil
		},
	}
}

// moveEntry swaps the target with its neighbor and submits the whole
// re-indexed list, last write wins.
func reorderAfterMove(ids []int64, target int64, up bool) ([]client.ReorderEntry, error) {
	pos := -1
	for i, id := range ids {
		if id == target {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("id %d not in list", target)
	}
	swap := pos + 1
	if up {
		swap = pos - 1
	}
	if swap < 0 || swap >= len(ids) {
		return nil, fmt.Errorf("id %d is already at the edge", target)
	}
	ids[pos], ids[swap] = ids[swap], ids[pos]

	order := make([]client.ReorderEntry, len(ids))
	for i, id := range ids {
		order[i] = client.ReorderEntry{ID: id, OrderIndex: i}
	}
	return order, nil
}

func newImagesMoveCmd() *cobra.Command {
	var up, down bool

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move an assigned image up or down within its piece",
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

			images, err := c.ListImages(cmd.Context())
			if err != nil {
				return err
			}

			// Reorder within the sibling set of the same jewelry piece.
			var jewelryID *int64
			for _, img := range images {
				if img.ID == id {
					jewelryID = img.JewelryID
				}
			}
			if jewelryID == nil {
				return fmt.Errorf("image %d is not assigned to a piece", id)
			}

			siblings := []client.Image{}
			for _, img := range images {
				if img.JewelryID != nil && *img.JewelryID == *jewelryID {
					siblings = append(siblings, img)
				}
			}
			sortImagesByOrder(siblings)

			ids := make([]int64, len(siblings))
			for i, img := range siblings {
				ids[i] = img.ID
			}

			order, err := reorderAfterMove(ids, id, up)
			if err != nil {
				return err
			}
			if err := c.ReorderImages(cmd.Context(), order); err != nil {
				return err
			}
			fmt.Printf("Moved image %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&up, "up", false, "move one position earlier")
	cmd.Flags().BoolVar(&down, "down", false, "move one position later")
	return cmd
}

func sortImagesByOrder(images []client.Image) {
	sort.Slice(images, func(i, j int) bool {
		return images[i].OrderIndex < images[j].OrderIndex
	})
}
