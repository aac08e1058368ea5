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
)

// equiangulateCmd represents the equiangulate command
var equiangulateCmd = &cobra.Command{
	Use:   "equiangulate",
	Short: "Build a mesh and run equiangulate() to convergence",
	Run: func(cmd *cobra.Command, args []string) {
		m := loadMesh()
		m.Equiangulate()
		m.UpdateDualMesh()
		fmt.Println("equiangulate called")
		printStats(m)
	},
}

func init() {
	rootCmd.AddCommand(equiangulateCmd)
}
