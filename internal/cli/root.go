package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/schemaregistry/v1/logger"
	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Factory builds the registry the commands talk to.
type Factory func(cfg schema_registry.Config) (schema_registry.Registry, error)

// DefaultFactory creates a *schema_registry.Client.
func DefaultFactory(cfg schema_registry.Config) (schema_registry.Registry, error) {
	client, err := schema_registry.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

type options struct {
	configPath string
	urls       []string
	username   string
	password   string
	token      string
	output     string
	verbose    bool
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	factory  Factory
	opts     options
	log      *logger.Logger
	registry schema_registry.Registry
}

// NewRootCommand creates the srctl root command.
func NewRootCommand(factory Factory) *cobra.Command {
	if factory == nil {
		factory = DefaultFactory
	}
	a := &app{factory: factory}

	cmd := &cobra.Command{
		Use:   "srctl",
		Short: "srctl - Schema Registry command-line client",
		Long: `srctl talks to one or more Confluent Schema Registry instances.

Every request is sent to all configured URLs at once and the first
successful answer is used, so a single healthy replica is enough.

Configuration is read from --config (YAML), then SCHEMA_REGISTRY_*
environment variables when no file is given; flags override both.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringArrayVar(&a.opts.urls, "url", nil, "Registry base URL (repeatable)")
	flags.StringVar(&a.opts.username, "username", "", "Basic auth username")
	flags.StringVar(&a.opts.password, "password", "", "Basic auth password")
	flags.StringVar(&a.opts.token, "token", "", "Bearer token")
	flags.StringVarP(&a.opts.output, "output", "o", OutputText, "Output format: text or json")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Log every endpoint attempt")

	cmd.AddCommand(
		a.newSubjectsCmd(),
		a.newSchemaCmd(),
		a.newCompatCmd(),
		a.newConfigCmd(),
		a.newModeCmd(),
		a.newExportersCmd(),
	)
	a.closeAfterRun(cmd)
	return cmd
}

// closeAfterRun makes every runnable command release the registry and flush
// the logger once it returns, including when it fails.
func (a *app) closeAfterRun(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		if run := sub.RunE; run != nil {
			sub.RunE = func(cmd *cobra.Command, args []string) error {
				err := run(cmd, args)
				if closeErr := a.teardown(); closeErr != nil {
					return errors.Join(err, closeErr)
				}
				return err
			}
		}
		a.closeAfterRun(sub)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.opts.output != OutputText && a.opts.output != OutputJSON {
		return fmt.Errorf("unsupported output format %q", a.opts.output)
	}

	file, err := loadFileConfig(a.opts.configPath)
	if err != nil {
		return err
	}

	logCfg := file.Log
	if err := env.Parse(&logCfg); err != nil {
		return fmt.Errorf("invalid logger environment: %w", err)
	}
	logCfg.Encoding = logger.EncodingConsole
	if logCfg.ServiceName == "" {
		logCfg.ServiceName = "srctl"
	}
	if logCfg.Level == "" {
		logCfg.Level = logger.Warning
	}
	if a.opts.verbose {
		logCfg.Level = logger.Debug
	}
	a.log = logger.NewLoggerClient(logCfg)

	cfg, err := a.registryConfig(file)
	if err != nil {
		return err
	}

	a.registry, err = a.factory(cfg.WithLogger(a.log))
	if err != nil {
		_ = a.teardown()
		return fmt.Errorf("failed to create registry client: %w", err)
	}
	return nil
}

// registryConfig layers flags over the file, or over the environment when no file is given.
func (a *app) registryConfig(file fileConfig) (schema_registry.Config, error) {
	cfg := file.Registry
	if a.opts.configPath == "" {
		env, err := schema_registry.NewConfigFromEnv()
		if err != nil {
			return schema_registry.Config{}, err
		}
		cfg = env
	}

	if len(a.opts.urls) > 0 {
		cfg.URLs = nil
		for _, u := range a.opts.urls {
			cfg = cfg.WithURL(u)
		}
	}
	if a.opts.username != "" {
		cfg = cfg.WithBasicAuth(a.opts.username, a.opts.password)
	}
	if a.opts.token != "" {
		cfg = cfg.WithBearerAuth(a.opts.token)
	}
	return cfg, nil
}

func (a *app) teardown() error {
	var errs []error
	if closer, ok := a.registry.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	a.registry = nil
	if a.log != nil {
		_ = a.log.Zap.Sync()
	}
	return errors.Join(errs...)
}
