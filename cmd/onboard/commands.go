package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/onboard/internal/config"
	"github.com/aanand-mishra/onboard/internal/hostctx"
	"github.com/aanand-mishra/onboard/internal/onboarding"
	"github.com/aanand-mishra/onboard/internal/reporter"
	"github.com/aanand-mishra/onboard/internal/types"
)

// app is everything a command needs once configuration has been read.
type app struct {
	cfg     *config.Config
	profile types.Profile
	session *onboarding.Session
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "onboard",
		Short: "Print the NERD developer-onboarding session",
		Long: `Print the NERD developer-onboarding session: a banner, the current date,
the client identifier, a welcome line and the configured user profile.

Without --config (or CONFIG_PATH) the "Nerd" profile, age 30, is greeted as
"Developer". A config file is taken as written: profile.name is required,
profile.age defaults to 0, and an "email" attribute must be a valid email
address.

Examples:
  onboard
  onboard --config config/local.yaml --format json
  onboard greet Ada Grace
  onboard report`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			return a.session.Run(a.cfg.Greet.Name, a.profile)
		},
	}

	root.PersistentFlags().String("config", "", "path to the configuration file (or set "+config.PathEnv+")")
	root.PersistentFlags().String("format", "", "profile report format: text or json")

	root.AddCommand(newGreetCmd(), newReportCmd(), newEnvCmd())
	return root
}

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name...]",
		Short: "Print a welcome line for each name (the configured name when none)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = []string{a.cfg.Greet.Name}
			}
			for _, name := range names {
				if err := a.session.Greet(name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the configured user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			return a.session.Report(a.profile)
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables onboard reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := config.Describe()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

// setup loads the config, builds the logger, validates the profile and
// wires the session to the command's output stream.
func setup(cmd *cobra.Command) (*app, error) {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// Persistent flags are merged into every subcommand's flag set, so
	// --config and --format work after "greet" and "report" too.
	path, _ := cmd.Flags().GetString("config")
	formatFlag, _ := cmd.Flags().GetString("format")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if formatFlag != "" {
		cfg.Format = formatFlag
	}

	format, err := reporter.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// stderr, so stdout carries nothing but the session lines.
	log := setupLogger(cfg.Env, cmd.ErrOrStderr())
	log.Debug("config loaded",
		slog.String("env", cfg.Env),
		slog.String("format", string(format)))

	// ── 3. Validate the Profile ───────────────────────────────────────────
	// Build runs the validator rules on the profile literal; a bad file
	// stops here, before anything is printed.
	profile, err := cfg.Profile.Build()
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	// ── 4. Wire the Session ───────────────────────────────────────────────
	// Host values are read once here and handed to the session; nothing
	// below touches the clock or the runtime directly.
	host := hostctx.NewHost(
		hostctx.WithDateLayout(cfg.DateLayout),
		hostctx.WithClientID(cfg.ClientID),
	)

	session := onboarding.New(cmd.OutOrStdout(), host, onboarding.Options{
		Banner: cfg.Banner,
		Format: format,
		Logger: log,
	})

	return &app{cfg: cfg, profile: profile, session: session}, nil
}
