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
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Phibonoci/Groebner-Basis/pkg/field"
	"github.com/Phibonoci/Groebner-Basis/pkg/field/bls12_377"
	"github.com/Phibonoci/Groebner-Basis/pkg/field/fp"
	"github.com/Phibonoci/Groebner-Basis/pkg/groebner"
	"github.com/Phibonoci/Groebner-Basis/pkg/poly"
)

// basisCmd represents the basis command
var basisCmd = &cobra.Command{
	Use:   "basis [flags] ideal_file",
	Short: "Compute a Gröbner basis of the ideal generated by a set of polynomials.",
	Long: `Compute a Gröbner basis of the ideal generated by a set of polynomials.
	The file holds one generator per line, written with integer coefficients
	as in "x_0^2 - 2*x_0 + 1"; blank lines and lines starting with '#' are
	skipped.  Pass "-" to read from standard input.`,
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
		lines := readIdealFile(args[0])
		check := GetFlag(cmd, "check")
		//
		dispatchBasis(GetString(cmd, "field"), GetString(cmd, "order"), lines, check)
	},
}

// readIdealFile reads the generator lines of an ideal file, dropping blank
// lines and '#' comments.
func readIdealFile(filename string) []string {
	var (
		bytes []byte
		err   error
	)
	//
	if filename == "-" {
		bytes, err = io.ReadAll(os.Stdin)
	} else {
		bytes, err = os.ReadFile(filename)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	var lines []string
	//
	for _, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimSpace(line)
		//
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		//
		lines = append(lines, line)
	}
	//
	return lines
}

// dispatchBasis maps the runtime field and order selection onto the generic
// instantiations.
func dispatchBasis(fieldName, orderName string, lines []string, check bool) {
	switch fieldName {
	case "rational":
		dispatchBasisOrder[field.Rational](orderName, lines, check)
	case "fp":
		dispatchBasisOrder[fp.Element](orderName, lines, check)
	case "bls12-377":
		dispatchBasisOrder[bls12_377.Element](orderName, lines, check)
	default:
		fmt.Printf("unknown coefficient field %q\n", fieldName)
		os.Exit(2)
	}
}

func dispatchBasisOrder[F field.Element[F]](orderName string, lines []string, check bool) {
	switch orderName {
	case "lex":
		runBasis[F, poly.Lex](lines, check)
	case "grlex":
		runBasis[F, poly.GrLex](lines, check)
	case "grevlex":
		runBasis[F, poly.GrevLex](lines, check)
	default:
		fmt.Printf("unknown monomial order %q\n", orderName)
		os.Exit(2)
	}
}

func runBasis[F field.Element[F], O poly.Ordering](lines []string, check bool) {
	var seed poly.Set[F, O]
	//
	for i, line := range lines {
		f, err := poly.ParsePolynomial[F, O](line)
		if err != nil {
			fmt.Printf("generator %d: %s\n", i+1, err)
			os.Exit(2)
		}
		//
		seed.Insert(f)
	}
	//
	log.Debugf("seed set has %d generators", seed.Len())
	//
	basis := groebner.Buchberger(seed)
	//
	heading(fmt.Sprintf("Gröbner basis (%d elements)", basis.Len()))
	//
	for f := range basis.All() {
		fmt.Println(f)
	}
	//
	if check {
		verified := groebner.IsGroebnerBasis(basis)
		//
		for f := range seed.All() {
			verified = verified && groebner.Reduce(f, basis).IsZero()
		}
		//
		fmt.Printf("verified: %v\n", verified)
	}
}

func init() {
	basisCmd.Flags().Bool("check", false, "verify the result: every S-polynomial and every generator reduces to zero")
	rootCmd.AddCommand(basisCmd)
}
