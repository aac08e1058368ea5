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

	"github.com/spf13/cobra"

	avsutils "github.com/notargets/avs/utils"

	"github.com/notargets/dualmesh/mesh/plot"
)

var (
	includeBoundary bool
	render          bool
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Flatten a mesh's dual cells into a point+polygon buffer",
	Run: func(cmd *cobra.Command, args []string) {
		m := loadMesh()
		buf := plot.Area(m, includeBoundary)
		fmt.Printf("points=%d polygons=%d\n", len(buf.Points), len(buf.Polygons))
		if render {
			plot.RenderChart(buf, avsutils.BLACK)
		}
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().BoolVar(&includeBoundary, "include-boundary", true, "include boundary vertex dual cells")
	plotCmd.Flags().BoolVar(&render, "render", false, "open an avs chart2d window and draw the result")
}
