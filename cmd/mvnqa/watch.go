package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/service"
)

var (
	watchFormat string
	watchConfig string
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-render the quality snapshot when reports change",
		Long: `Watch the project's report locations and re-render the quality
snapshot whenever a build regenerates them. Events are debounced so one
build produces one snapshot.

Examples:
  mvnqa watch ./my-project
  mvnqa watch --format json ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringVarP(&watchFormat, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&watchConfig, "config", "c", "", "Path to config file")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := argOrCwd(args)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(watchFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfigForTarget(watchConfig, path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := watchTargets(cfg, path)
	for _, dir := range watched {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", dir, err)
		}
	}
	if len(watched) == 0 {
		return fmt.Errorf("nothing to watch under %s; run a build first", path)
	}

	fmt.Fprintf(os.Stderr, "Watching %s for report changes (Ctrl-C to stop)\n", path)

	render := func(ctx context.Context) {
		svc := service.NewDashboardService(cfg,
			service.NewTestReportService(cfg),
			service.NewCoverageService(cfg))
		resp, err := app.NewDashboardUseCase(svc).Execute(ctx, domain.DashboardRequest{ProjectPath: path})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if err := service.NewOutputFormatter().WriteDashboard(resp, format, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	ctx := cmd.Context()
	render(ctx)

	// Debounce: a build touches many report files in a burst; only the
	// quiet period after the last event triggers a render.
	var timer *time.Timer
	debounced := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(cfg.Watch.Debounce, func() {
			select {
			case debounced <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		case <-debounced:
			render(ctx)
		}
	}
}

// watchTargets returns the existing directories that hold report artifacts
// for the project.
func watchTargets(cfg *config.Config, projectPath string) []string {
	candidates := []string{
		cfg.SurefirePath(projectPath),
		filepath.Dir(cfg.JacocoPath(projectPath)),
		filepath.Dir(cfg.PMDPath(projectPath)),
	}

	var dirs []string
	seen := make(map[string]struct{})
	for _, dir := range candidates {
		if _, dup := seen[dir]; dup {
			continue
		}
		seen[dir] = struct{}{}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
