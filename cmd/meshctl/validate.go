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
	"os"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Build a mesh and check spec invariants 1-5",
	Run: func(cmd *cobra.Command, args []string) {
		m := loadMesh()
		fmt.Println("validate called")
		if err := m.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("ok")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
