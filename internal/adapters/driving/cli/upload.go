package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload an image",
	Long: `Uploads an image file to the backend and prints the reference it
returns. The reference can be used as a document cover.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if uploadService == nil {
		return errors.New("upload service not configured")
	}

	path := args[0]
	ctx := context.Background()

	ref, err := uploadService.Upload(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}

	cmd.Println(ref)
	return nil
}
