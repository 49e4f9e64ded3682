package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/depwatch/depwatch/internal/config"
	"github.com/depwatch/depwatch/internal/dashboard"
	"github.com/depwatch/depwatch/internal/errors"
	"github.com/depwatch/depwatch/internal/logger"
	"github.com/depwatch/depwatch/internal/snapshot"
	"github.com/depwatch/depwatch/internal/stream"
)

// watchCommand wires the loader, the push channel, and the dashboard
// model, then runs the TUI until the user quits.
func watchCommand(serverFlag, namespaceFlag string) error {
	cfg, err := watchConfig(serverFlag, namespaceFlag)
	if err != nil {
		return err
	}

	log := logger.NewEnvLogger("[watch]")

	// The session context bounds the snapshot fetch and the subscription.
	// Cancelling it on exit releases the socket even if teardown raced
	// with an in-flight command.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := snapshot.NewHTTPLoader(cfg.Server.URL, cfg.Server.Timeout,
		snapshot.WithLogger(log))
	defer loader.Close()

	monitor := stream.NewSocketMonitor(stream.Options{
		URL:       cfg.Server.URL,
		Path:      cfg.Stream.Path,
		Namespace: cfg.Stream.Namespace,
		Event:     cfg.Stream.Event,
		Logger:    log,
	})
	defer monitor.Close()

	model := dashboard.NewModel(ctx, loader, monitor, cfg.Monitor.HistorySize, log)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"Dashboard terminated unexpectedly",
			"Check the terminal supports the alternate screen, or run with -v for details")
	}

	return nil
}

// watchConfig resolves the watch command's config, applying its
// flag overrides on top of the shared resolution.
func watchConfig(serverFlag, namespaceFlag string) (*config.Config, error) {
	cfg, err := loadConfig(serverFlag)
	if err != nil {
		return nil, err
	}
	if namespaceFlag != "" {
		cfg.Stream.Namespace = namespaceFlag
	}
	return cfg, nil
}

// loadConfig resolves the effective config: explicit --config path, the
// nearest .depwatch.yaml, or defaults, with the --server flag taking
// precedence over the file.
func loadConfig(serverFlag string) (*config.Config, error) {
	path, err := config.Find(Config())
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if serverFlag != "" {
		cfg.Server.URL = serverFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
