package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridcourier/internal/adapter/mapgen"
)

func newGenMapsCommand(a *app) *cobra.Command {
	dir := "maps"
	cmd := &cobra.Command{
		Use:   "genmaps",
		Short: "Write the sample maps (small, medium, large, dynamic) to a directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := mapgen.WriteAll(dir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			a.logger.Info("sample maps written", zap.String("dir", dir), zap.Int("count", len(paths)))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", dir, "output directory")
	return cmd
}
