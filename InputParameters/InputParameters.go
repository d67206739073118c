package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/cartmesh/mesh"
)

// MeshParameters are obtained from the YAML input file. ghodss/yaml reads through
// encoding/json, so the keys are taken from the json tags.
type MeshParameters struct {
	Title            string `json:"Title"`
	Dimension        int    `json:"Dimension"`
	SolutionDegree   int    `json:"SolutionDegree"`
	MeshDegree       int    `json:"MeshDegree"`
	ProblemSize      int64  `json:"ProblemSize"`
	NumComponents    int    `json:"NumComponents"`
	QuadraturePoints int    `json:"QuadraturePoints"` // Zero selects SolutionDegree+2
}

const ExampleFile = `
########################################
Title: "Unit cube, quadratic solution"
Dimension: 3
SolutionDegree: 2
MeshDegree: 1
ProblemSize: 100000
NumComponents: 1
QuadraturePoints: 4
########################################
`

func (ip *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *MeshParameters) Options() mesh.Options {
	return mesh.Options{
		Dim:            ip.Dimension,
		SolutionDegree: ip.SolutionDegree,
		MeshDegree:     ip.MeshDegree,
		ProblemSize:    ip.ProblemSize,
		NumComp:        ip.NumComponents,
		NumQPts:        ip.QuadraturePoints,
	}
}

func (ip *MeshParameters) Validate() error {
	if err := ip.Options().Validate(); err != nil {
		return fmt.Errorf("mesh parameters %q: %w", ip.Title, err)
	}
	return nil
}

func (ip *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", ip.Dimension)
	fmt.Printf("[%d]\t\t\t\t= Solution Degree\n", ip.SolutionDegree)
	fmt.Printf("[%d]\t\t\t\t= Mesh Degree\n", ip.MeshDegree)
	fmt.Printf("[%d]\t\t\t= Problem Size\n", ip.ProblemSize)
	fmt.Printf("[%d]\t\t\t\t= Components\n", ip.NumComponents)
	fmt.Printf("[%d]\t\t\t\t= Quadrature Points\n", ip.QuadraturePoints)
}
