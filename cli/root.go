package cli

import (
	"github.com/spf13/cobra"

	"finance-calculator/config"
	"finance-calculator/logging"
)

// state carries the app built by the root command to its subcommands.
type state struct {
	configPath string
	verbose    bool
	app        *app
}

func (s *state) close() {
	if s.app != nil {
		_ = s.app.close()
	}
}

func Execute() error {
	st := &state{}
	defer st.close()
	return newRootCmd(st).Execute()
}

func newRootCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fincalc",
		Short:        "Personal finance calculator",
		Long:         "fincalc computes loan payments, savings goals and interest from the command line or over HTTP.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(".env"); err != nil {
				return err
			}
			cfg, err := config.Load(st.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging, st.verbose)
			if err != nil {
				return err
			}
			st.app = newApp(cfg, logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), st.app)
		},
	}

	cmd.PersistentFlags().StringVar(&st.configPath, "config", config.DefaultConfigFile, "path to the YAML config file")
	cmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		demoCmd(st),
		loanCmd(st),
		savingsCmd(st),
		interestCmd(st),
		compareTermsCmd(st),
		serveCmd(st),
		versionCmd(),
	)
	return cmd
}
