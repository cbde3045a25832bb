package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/eagraf/overlay-installer/internal/config"
	"github.com/eagraf/overlay-installer/internal/installer"
	"github.com/eagraf/overlay-installer/internal/logging"
	"github.com/eagraf/overlay-installer/internal/manifest"
	"github.com/eagraf/overlay-installer/internal/vr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type environment struct {
	stdout  io.Writer
	stderr  io.Writer
	runtime vr.Runtime
	viper   *viper.Viper
}

func (e *environment) load() (*config.InstallerConfig, *logging.Logger, error) {
	cfg, err := config.NewInstallerConfig(e.viper)
	if err != nil {
		return nil, nil, err
	}
	log := logging.NewLogger(e.stdout, e.stderr, cfg.Level())
	log.Debug().Str("app_key", cfg.AppKey).Str("manifest", cfg.ManifestPath).Msg("loaded config")
	return cfg, log, nil
}

func (e *environment) installer(cfg *config.InstallerConfig, log *logging.Logger) *installer.Installer {
	return installer.New(e.runtime,
		installer.WithAppKey(cfg.AppKey),
		installer.WithManifestPath(cfg.ManifestPath),
		installer.WithLogger(log),
	)
}

func newRootCmd(stdout, stderr io.Writer, runtime vr.Runtime) *cobra.Command {
	env := &environment{
		stdout:  stdout,
		stderr:  stderr,
		runtime: runtime,
		viper:   viper.New(),
	}

	rootCmd := &cobra.Command{
		Use:           "overlay-installer",
		Short:         "Register the MPRIS overlay with SteamVR and open it",
		Long:          `overlay-installer registers manifest.vrmanifest with the VR runtime if the overlay is not installed yet, then launches its dashboard overlay.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := env.load()
			if err != nil {
				return err
			}
			_, err = env.installer(cfg, log).Run()
			return err
		},
	}
	if err := config.BindFlags(env.viper, rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		newStatusCmd(env),
		newValidateCmd(env),
		newVersionCmd(),
	)
	return rootCmd
}

func newStatusCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the overlay is registered with the runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := env.load()
			if err != nil {
				return err
			}
			installed, err := env.installer(cfg, log).Status()
			if err != nil {
				return err
			}
			if installed {
				log.Infof("%s is installed", cfg.AppKey)
			} else {
				log.Infof("%s is not installed", cfg.AppKey)
			}
			return nil
		},
	}
}

func newValidateCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the manifest declares the overlay before registering it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := env.load()
			if err != nil {
				return err
			}
			app, err := manifest.ValidateFile(cfg.ManifestPath, cfg.AppKey)
			if err != nil {
				return err
			}
			log.Successf("%s declares %s (%s)", cfg.ManifestPath, app.AppKey, app.LaunchType)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of overlay-installer",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// errorMessage renders the line shown for a fatal error.
func errorMessage(err error) string {
	var appErr *vr.ApplicationError
	switch {
	case errors.Is(err, installer.ErrRegistryUnavailable):
		return "Failed to access VR applications!"
	case errors.Is(err, installer.ErrRegistrationFailed) && errors.As(err, &appErr):
		return fmt.Sprintf("Failed to install application: %s", appErr)
	}
	return err.Error()
}
