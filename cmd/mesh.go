package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/cartmesh/InputParameters"
	"github.com/notargets/cartmesh/backend/ref"
	"github.com/notargets/cartmesh/mesh"
)

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate one structured mesh and print its description",
	Long: `
Sizes a structured mesh for the target problem size, builds the element restrictions and the
Gauss-Lobatto node coordinates, then prints a summary.

cartmesh mesh -d 2 -p 3 -g 1 -s 10000 --coords`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			opts mesh.Options
			m    *mesh.Mesh
		)
		if opts, err = meshOptions(); err != nil {
			return
		}
		logger.Debug("generating mesh", zap.Any("options", opts))
		if m, err = mesh.Generate(ref.New(), opts); err != nil {
			logger.Error("mesh generation failed", zap.Error(err))
			return
		}
		logger.Info("mesh generated",
			zap.Int("dim", m.Dim),
			zap.Stringer("counts", m.Counts),
			zap.Int("elements", m.NumElements),
			zap.Int("solutionNodes", m.SolutionScalarSize))
		return PrintMesh(cmd.OutOrStdout(), m, viper.GetBool("mesh.coords"))
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	var (
		Dim            = 3
		SolutionDegree = 2
		MeshDegree     = 1
		ProblemSize    = int64(8 * 16)
		NumComp        = 1
	)
	MeshCmd.Flags().IntP("dim", "d", Dim, "spatial dimension: 1, 2 or 3")
	MeshCmd.Flags().IntP("solutionDegree", "p", SolutionDegree, "polynomial degree of the solution field")
	MeshCmd.Flags().IntP("meshDegree", "g", MeshDegree, "polynomial degree of the coordinate field")
	MeshCmd.Flags().Int64P("problemSize", "s", ProblemSize, "target number of solution degrees of freedom")
	MeshCmd.Flags().IntP("numComp", "c", NumComp, "number of solution components")
	MeshCmd.Flags().IntP("qpts", "q", 0, "1-D quadrature points per element, 0 means solutionDegree+2")
	MeshCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of mesh parameters, overrides the flags")
	MeshCmd.Flags().Bool("coords", false, "print the node coordinates")
	bindFlags(MeshCmd, "mesh")
}

func bindFlags(cmd *cobra.Command, prefix string) {
	for _, name := range []string{"dim", "solutionDegree", "meshDegree", "problemSize", "numComp",
		"qpts", "inputParametersFile", "coords"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(prefix+"."+name, f); err != nil {
				panic(err)
			}
		}
	}
}

func meshOptions() (opts mesh.Options, err error) {
	opts = mesh.Options{
		Dim:            viper.GetInt("mesh.dim"),
		SolutionDegree: viper.GetInt("mesh.solutionDegree"),
		MeshDegree:     viper.GetInt("mesh.meshDegree"),
		ProblemSize:    viper.GetInt64("mesh.problemSize"),
		NumComp:        viper.GetInt("mesh.numComp"),
		NumQPts:        viper.GetInt("mesh.qpts"),
	}
	if file := viper.GetString("mesh.inputParametersFile"); len(file) != 0 {
		var (
			data []byte
			ip   = &InputParameters.MeshParameters{}
		)
		if data, err = os.ReadFile(file); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w\nExample File:%s", file, err, InputParameters.ExampleFile)
			return
		}
		if !viper.GetBool("quiet") {
			ip.Print()
		}
		opts = ip.Options()
	}
	err = opts.Validate()
	return
}

func PrintMesh(w io.Writer, m *mesh.Mesh, showCoords bool) (err error) {
	var (
		coords []float64
		lo, hi float64
	)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Dimension\n", m.Dim)
	fmt.Fprintf(w, "%v\t\t\t= Elements per Axis\n", m.Counts)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Elements\n", m.NumElements)
	fmt.Fprintf(w, "%v\t\t\t= Solution Nodes per Axis\n", m.Counts.NodesPerAxis(m.Dim, m.SolutionDegree))
	fmt.Fprintf(w, "[%d]\t\t\t\t= Solution Scalar Size\n", m.SolutionScalarSize)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Mesh Scalar Size\n", m.MeshScalarSize)
	fmt.Fprintf(w, "[%d x %d]\t\t\t= Solution Restriction (E x L)\n",
		m.SolutionRestriction.ESize(), m.SolutionRestriction.LSize())
	fmt.Fprintf(w, "[%d]\t\t\t\t= Quadrature Data Size\n", m.QDataRestriction.LSize())
	for d := 0; d < m.Dim; d++ {
		if lo, hi, err = m.CoordRange(d); err != nil {
			return
		}
		fmt.Fprintf(w, "[%g, %g]\t\t\t= Axis %d Range\n", lo, hi, d)
	}
	if !showCoords {
		return
	}
	if coords, err = m.Coords.View(); err != nil {
		return
	}
	X := mat.NewDense(m.Dim, m.MeshScalarSize, coords[:m.Dim*m.MeshScalarSize])
	fmt.Fprintf(w, "X = \n%v\n", mat.Formatted(X.T(), mat.Squeeze()))
	return
}
