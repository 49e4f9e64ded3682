package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/depwatch/depwatch/internal/config"
	"github.com/depwatch/depwatch/internal/errors"
	"github.com/depwatch/depwatch/internal/logger"
	"github.com/depwatch/depwatch/internal/snapshot"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Server         string // Pre-specified backend URL
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init creates a new .depwatch.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect the backend URL
	serverURL := opts.Server
	if serverURL == "" {
		if opts.NonInteractive {
			serverURL = config.DefaultConfig().Server.URL
		} else {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Backend URL").
						Description("Base address of the dependency graph backend").
						Placeholder("http://localhost:8000").
						Value(&serverURL).
						Validate(func(s string) error {
							s = strings.TrimSpace(s)
							if s == "" {
								return nil // empty keeps the default
							}
							u, err := url.Parse(s)
							if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
								return fmt.Errorf("enter an http or https URL")
							}
							return nil
						}),
				),
			)

			if err := form.Run(); err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to get user input",
					"Check terminal compatibility or pass --server")
			}
		}
	}

	cfg := config.DefaultConfig()
	if strings.TrimSpace(serverURL) != "" {
		cfg.Server.URL = strings.TrimSpace(serverURL)
	}

	// Probe the backend before saving
	if err := probeBackend(cfg); err != nil {
		var saveAnyway bool
		if !opts.NonInteractive {
			fmt.Printf("\n✗ Backend '%s' is not reachable: %v\n\n", cfg.Server.URL, err)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Save config anyway? (You can start the backend later)").
						Value(&saveAnyway),
				),
			)

			if formErr := form.Run(); formErr != nil || !saveAnyway {
				return errors.WrapWithCode(err, errors.ErrFetch,
					fmt.Sprintf("Backend '%s' is not reachable", cfg.Server.URL),
					"Check that the monitoring backend is running: curl "+cfg.Server.URL+snapshot.SnapshotPath)
			}
		} else {
			return errors.WrapWithCode(err, errors.ErrFetch,
				fmt.Sprintf("Backend '%s' is not reachable", cfg.Server.URL),
				"Check that the monitoring backend is running: curl "+cfg.Server.URL+snapshot.SnapshotPath)
		}
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# depwatch configuration
# Run 'depwatch watch' to start the dashboard
# Run 'depwatch status' for a one-shot summary

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("✓ Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  depwatch status  - Check the backend and graph")
	fmt.Println("  depwatch watch   - Start the dashboard")

	return nil
}

// probeBackend fetches the snapshot once to verify the backend answers.
func probeBackend(cfg *config.Config) error {
	loader := snapshot.NewHTTPLoader(cfg.Server.URL, cfg.Server.Timeout,
		snapshot.WithLogger(logger.NewEnvLogger("[init]")))
	defer loader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	_, err := loader.Load(ctx)
	return err
}

// initCommand is the implementation called by the cobra command.
func initCommand(serverFlag string, force bool) error {
	return Init(InitOptions{
		Server:    serverFlag,
		Overwrite: force,
	})
}
