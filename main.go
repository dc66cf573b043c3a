package main

import (
	"fmt"
	"os"

	"github.com/docshub/docshub-cli/internal/adapters/driven/api"
	configfile "github.com/docshub/docshub-cli/internal/adapters/driven/config/file"
	"github.com/docshub/docshub-cli/internal/adapters/driving/cli"
	"github.com/docshub/docshub-cli/internal/core/ports/driving"
	"github.com/docshub/docshub-cli/internal/core/services"
)

// defaultBackendURL is used when no flag, environment variable or
// configuration names one.
const defaultBackendURL = "http://localhost:8000"

// envBackendURL overrides the configured backend URL.
const envBackendURL = "DOCSHUB_BACKEND_URL"

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.SetConfigStore(store)
	cli.SetVersion(version)
	cli.SetServiceFactory(func(backendURL string) (driving.DocumentService, driving.UploadService, error) {
		if backendURL == "" {
			backendURL = os.Getenv(envBackendURL)
		}
		if backendURL == "" {
			backendURL = store.GetString(configfile.KeyBackendURL)
		}
		if backendURL == "" {
			backendURL = defaultBackendURL
		}

		backend := api.NewClient(backendURL)
		return services.NewDocumentService(backend), services.NewUploadService(backend), nil
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
