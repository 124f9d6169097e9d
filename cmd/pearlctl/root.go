package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pearlatelier/pearlsite-go/pkg/client"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	assumeYes bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pearlctl",
		Short:         "Admin console for a pearlsite server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "server base URL")
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newChangePasswordCmd(),
		newJewelryCmd(),
		newImagesCmd(),
		newGalleryCmd(),
		newPagesCmd(),
		newStatsCmd(),
		newTranslateCmd(),
	)
	return root
}

func tokenDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = home
	}
	return filepath.Join(dir, "pearlctl")
}

// apiClient builds the client with the file token store and a hook
// that explains forced logouts.
func apiClient() *client.Client {
	c := client.New(serverURL, client.NewFileTokenStore(tokenDir()))
	c.OnUnauthorized = func() {
		fmt.Fprintln(os.Stderr, "Session expired, please log in again with `pearlctl login`.")
	}
	return c
}

// requireLogin builds the client and fails fast when no session is
// stored.
func requireLogin() (*client.Client, error) {
	c := apiClient()
	if !c.LoggedIn() {
		return nil, fmt.Errorf("not logged in, please run `pearlctl login` first")
	}
	return c, nil
}

// confirm asks a y/N question unless --yes was passed.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
