// Package cli wires the courier command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gridcourier/internal/config"
	"gridcourier/internal/observability"
)

// Version is set at build time with -ldflags "-X gridcourier/internal/cli.Version=...".
var Version = "dev"

// ErrDeliveryFailed makes the process exit non-zero after a failed run.
var ErrDeliveryFailed = errors.New("delivery failed")

type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.NewDefaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "courier",
		Short:         "Plan and execute grid deliveries around moving obstacles.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			observability.InitializeLogger(cfg.Logger)
			a.logger = observability.GetLogger()
			a.logger.Debug("courier starting", zap.String("version", Version))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	root.SetVersionTemplate(`{{printf "courier version %s\n" .Version}}`)

	root.AddCommand(
		newRunCommand(a),
		newCompareCommand(a),
		newDemoCommand(a),
		newGenMapsCommand(a),
	)
	return root
}

func Execute() int {
	defer observability.Sync()
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrDeliveryFailed) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}
