package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/guardlog/internal/config"
	"github.com/alexanderramin/guardlog/internal/logging"
	"github.com/alexanderramin/guardlog/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// App holds the services and process handles used by CLI commands.
// Reports may be preset (tests); otherwise it is built once the
// configuration is known.
type App struct {
	Reports service.ReportService

	Stdin  io.Reader
	Stderr io.Writer

	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the top-level "guardlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	v := viper.New()
	var configPath string

	root := &cobra.Command{
		Use:           "guardlog",
		Short:         "Reconstruct guard sleep schedules from shift logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv(config.EnvPrefix + "_CONFIG")
			}
			return app.setup(v, configPath)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML config file (env GUARDLOG_CONFIG)")
	pf.String("log-level", "warn", "Log level: trace, debug, info, warn, error or disabled")
	pf.String("color", "auto", "Color output: auto, always or never")
	bindFlags(v, pf, map[string]string{
		"log-level": "log.level",
		"color":     "color",
	})

	root.AddCommand(
		newReportCmd(app, v),
		newEntriesCmd(app),
		newGuardCmd(app),
	)

	return root
}

// bindFlags maps flag names onto config keys. A flag only overrides the
// file and environment values when it was set explicitly.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (a *App) setup(v *viper.Viper, configPath string) error {
	conf, err := config.Load(v, configPath)
	if err != nil {
		return err
	}
	a.Config = conf

	switch conf.Color {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	logger, err := logging.New(a.stderr(), conf.Log.Level)
	if err != nil {
		return err
	}
	a.Logger = logger
	logger.Debug().Str("config", conf.Path).Str("log_level", conf.Log.Level).Msg("configuration loaded")

	if a.Reports == nil {
		a.Reports = service.NewReportService(logger, service.NewLogUseCaseObserver(logger))
	}
	return nil
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}
