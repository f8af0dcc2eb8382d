package controllers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/oneup/internal/domain/commands"
	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/infrastructure/presenters"
)

// CheckController handles the root command: check one manifest and print the report.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [path]",
		Short: "Report the latest version of every dependency in a manifest",
		Long: `Read a requirements file or pyproject.toml, look up the latest release of
each declared dependency on PyPI, and report which pins are outdated.

The path may be a manifest file or a directory. Without a path the current
directory is searched; when it holds several manifests you are asked which
one to check.`,
	}
}

// AddFlags registers the check flags on cmd.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", entities.DefaultFormat,
		"Output format: table, json, or markdown")
	cmd.Flags().Bool("outdated", false,
		"Show only outdated dependencies")
	cmd.Flags().String("index-url", "",
		"Base URL of the package index (default: "+entities.DefaultIndexURL+")")
	cmd.Flags().Duration("timeout", 0,
		"Timeout for each package index request (default: "+entities.DefaultTimeout.String()+")")
	cmd.Flags().Bool("no-color", false,
		"Disable coloured output")
	cmd.Flags().Bool("no-interactive", false,
		"Never prompt; use the first manifest found")
	cmd.Flags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
}

// Execute runs a check. Only fatal conditions are returned as errors.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	presenter, err := presenters.NewPresenter(settings.Format)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")

	report, err := it.command.Execute(ctx, settings, commands.CheckOptions{
		Path:        path,
		Interactive: !noInteractive,
	})
	if err != nil {
		return err
	}

	if settings.OnlyOutdated {
		report = report.OnlyOutdated()
	}
	return presenter.Render(cmd.OutOrStdout(), report)
}

// loadSettings merges, in increasing priority: defaults, the config file, the environment and flags.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var (
		settings *entities.Settings
		err      error
	)
	switch {
	case configPath != "":
		settings, err = entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		logger.Infof("Using config file: %s", configPath)
	default:
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("No config file found, using defaults: %v", findErr)
			settings = entities.DefaultSettings()
			break
		}
		settings, err = entities.NewSettings(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debugf("Using config file: %s", found)
	}

	if envErr := settings.ApplyEnvironment(); envErr != nil {
		return nil, envErr
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.Format, _ = flags.GetString("format")
	}
	if flags.Changed("outdated") {
		settings.OnlyOutdated, _ = flags.GetBool("outdated")
	}
	if flags.Changed("index-url") {
		settings.IndexURL, _ = flags.GetString("index-url")
	}
	if flags.Changed("timeout") {
		settings.Timeout, _ = flags.GetDuration("timeout")
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid settings: %w", validateErr)
	}
	return settings, nil
}
