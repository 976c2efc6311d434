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
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
	"github.com/Phibonoci/Groebner-Basis/pkg/field/bls12_377"
	"github.com/Phibonoci/Groebner-Basis/pkg/field/fp"
	"github.com/Phibonoci/Groebner-Basis/pkg/groebner"
	"github.com/Phibonoci/Groebner-Basis/pkg/poly"
)

// cyclicCmd represents the cyclic command
var cyclicCmd = &cobra.Command{
	Use:   "cyclic [flags] n",
	Short: "Compute a Gröbner basis of the cyclic-n ideal.",
	Long: `Build the cyclic-n ideal from the elementary symmetric polynomials in n
variables and complete it into a Gröbner basis via Buchberger's algorithm.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("invalid variable count %q\n", args[0])
			os.Exit(2)
		}
		//
		dispatchCyclic(GetString(cmd, "field"), GetString(cmd, "order"), uint(n))
	},
}

// dispatchCyclic maps the runtime field and order selection onto the generic
// instantiations.
func dispatchCyclic(fieldName, orderName string, n uint) {
	switch fieldName {
	case "rational":
		dispatchCyclicOrder[field.Rational](orderName, n)
	case "fp":
		dispatchCyclicOrder[fp.Element](orderName, n)
	case "bls12-377":
		dispatchCyclicOrder[bls12_377.Element](orderName, n)
	default:
		fmt.Printf("unknown coefficient field %q\n", fieldName)
		os.Exit(2)
	}
}

func dispatchCyclicOrder[F field.Element[F]](orderName string, n uint) {
	switch orderName {
	case "lex":
		runCyclic[F, poly.Lex](n)
	case "grlex":
		runCyclic[F, poly.GrLex](n)
	case "grevlex":
		runCyclic[F, poly.GrevLex](n)
	default:
		fmt.Printf("unknown monomial order %q\n", orderName)
		os.Exit(2)
	}
}

func runCyclic[F field.Element[F], O poly.Ordering](n uint) {
	seed := groebner.CycleSet[F, O](n)
	log.Debugf("seed set has %d generators", seed.Len())
	//
	basis := groebner.Buchberger(seed)
	//
	heading(fmt.Sprintf("cyclic-%d basis (%d elements)", n, basis.Len()))
	//
	for p := range basis.All() {
		fmt.Println(p)
	}
}

func init() {
	rootCmd.AddCommand(cyclicCmd)
}
