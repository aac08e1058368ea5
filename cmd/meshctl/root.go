/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/dualmesh/config"
	"github.com/notargets/dualmesh/mesh"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshctl",
	Short: "Half-edge dual-mesh engine driver",
	Long: `
meshctl builds a half-edge surface mesh from a YAML configuration, drives
its postprocess / dual-mesh refresh, and runs its topological maintenance
operations (equiangulate, obtuse-boundary pruning), reporting or plotting
the result.

meshctl build|update|equiangulate|prune|plot|validate`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a mesh YAML configuration file")
	_ = rootCmd.MarkPersistentFlagRequired("config")
}

// loadMesh reads configPath, builds a mesh from it, and runs the initial
// dual-mesh generation -- the common setup every subcommand needs before
// it does its own thing.
func loadMesh() *mesh.Mesh {
	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatalf("meshctl: reading config %q: %v", configPath, err)
	}
	var cfg config.MeshConfig
	if err := cfg.Parse(data); err != nil {
		log.Fatalf("meshctl: parsing config %q: %v", configPath, err)
	}
	m := mesh.NewMesh()
	if err := config.Build(m, &cfg); err != nil {
		log.Fatalf("meshctl: building mesh from %q: %v", configPath, err)
	}
	m.GenerateDualMesh()
	return m
}

func printStats(m *mesh.Mesh) {
	s := m.Stats()
	fmt.Printf("vertices=%d half_edges=%d faces=%d boundary_components=%d triangulation=%v\n",
		s.NumVertices, s.NumHalfEdges, s.NumFaces, s.NumBoundaryComponents, s.IsTriangulation)
}
