// Package cli implements the command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docshub/docshub-cli/internal/core/ports/driving"
	"github.com/docshub/docshub-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected before command execution.
var (
	documentService driving.DocumentService
	uploadService   driving.UploadService
)

// serviceFactory builds the services once flags are parsed, so the
// --backend override is honoured. Set by main; tests inject services
// directly instead.
var serviceFactory func(backendURL string) (driving.DocumentService, driving.UploadService, error)

// Persistent flags.
var (
	flagVerbose bool
	flagBackend string
)

var rootCmd = &cobra.Command{
	Use:   "docshub",
	Short: "Terminal client for the Docs Hub documentation service",
	Long: `Docshub is a terminal client for the Docs Hub documentation service.

Browse, search, read and create documents from the command line, or
launch the interactive terminal UI with 'docshub tui'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		if serviceFactory != nil {
			documents, uploads, err := serviceFactory(flagBackend)
			if err != nil {
				return err
			}
			documentService = documents
			uploadService = uploads
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "backend base URL (overrides configuration)")
}

// SetServices injects the services the commands depend on.
func SetServices(documents driving.DocumentService, uploads driving.UploadService) {
	documentService = documents
	uploadService = uploads
}

// SetServiceFactory registers a factory that builds the services after
// flag parsing.
func SetServiceFactory(f func(backendURL string) (driving.DocumentService, driving.UploadService, error)) {
	serviceFactory = f
}

// SetVersion sets the version shown by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
