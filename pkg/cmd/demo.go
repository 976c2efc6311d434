// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Three circles through the single common point (7, 5): completing their
// ideal yields the linear basis {x_0 - 7, x_1 - 5}.
var demoIdeal = []string{
	"x_0^2 - 2*x_0 + x_1^2 - 26*x_1 + 70",
	"x_0^2 - 22*x_0 + x_1^2 - 16*x_1 + 160",
	"x_0^2 - 20*x_0 + x_1^2 - 2*x_1 + 76",
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo [flags]",
	Short: "Run the worked three-circles example.",
	Long: `Complete the ideal of three circles through a common point into a
	Gröbner basis, then verify the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		heading("generators")
		//
		for _, line := range demoIdeal {
			fmt.Println(line)
		}
		//
		dispatchBasis(GetString(cmd, "field"), GetString(cmd, "order"), demoIdeal, true)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
