package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/cartmesh/backend/ref"
	"github.com/notargets/cartmesh/mesh"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Generate the 1D, 2D and 3D meshes for one problem size concurrently",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			meshes = make([]*mesh.Mesh, mesh.MaxDim)
			g      errgroup.Group
		)
		for dim := 1; dim <= mesh.MaxDim; dim++ {
			opts := mesh.Options{
				Dim:            dim,
				SolutionDegree: viper.GetInt("sweep.solutionDegree"),
				MeshDegree:     viper.GetInt("sweep.meshDegree"),
				ProblemSize:    viper.GetInt64("sweep.problemSize"),
				NumComp:        viper.GetInt("sweep.numComp"),
				NumQPts:        viper.GetInt("sweep.qpts"),
			}
			// Each generation gets its own runtime handle
			g.Go(func() (err error) {
				if meshes[opts.Dim-1], err = mesh.Generate(ref.New(), opts); err != nil {
					return fmt.Errorf("dimension %d: %w", opts.Dim, err)
				}
				logger.Debug("sweep mesh generated", zap.Int("dim", opts.Dim))
				return
			})
		}
		if err = g.Wait(); err != nil {
			logger.Error("sweep failed", zap.Error(err))
			return
		}
		for _, m := range meshes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", m)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().IntP("solutionDegree", "p", 2, "polynomial degree of the solution field")
	SweepCmd.Flags().IntP("meshDegree", "g", 1, "polynomial degree of the coordinate field")
	SweepCmd.Flags().Int64P("problemSize", "s", 8*16, "target number of solution degrees of freedom")
	SweepCmd.Flags().IntP("numComp", "c", 1, "number of solution components")
	SweepCmd.Flags().IntP("qpts", "q", 0, "1-D quadrature points per element, 0 means solutionDegree+2")
	bindFlags(SweepCmd, "sweep")
}
