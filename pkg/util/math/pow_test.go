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
package math

import "testing"

const modulus = 1_000_000_007

func Test_PowMod_0(t *testing.T) {
	check(0, t)
}

func Test_PowMod_1(t *testing.T) {
	check(1, t)
}

func Test_PowMod_2(t *testing.T) {
	check(2, t)
}

func Test_PowMod_3(t *testing.T) {
	check(3, t)
}

func Test_PowMod_Large(t *testing.T) {
	check(modulus-1, t)
}

func Test_PowMod_Fermat(t *testing.T) {
	// a^(p-1) = 1 mod p for a not divisible by p
	for a := uint64(2); a < 10; a++ {
		if x := PowMod(a, modulus-1, modulus); x != 1 {
			t.Errorf("%d^(p-1) == %d != 1", a, x)
		}
	}
}

func check(base uint64, t *testing.T) {
	for i := uint64(0); i < 10; i++ {
		// Bruteforce solution
		e := bruteForce(base, i)
		// Check for a match
		if x := PowMod(base, i, modulus); x != e {
			t.Errorf("%d^%d == %d != %d", base, i, x, e)
		}
	}
}

func bruteForce(base, exp uint64) uint64 {
	acc := uint64(1)
	//
	for i := uint64(0); i < exp; i++ {
		acc = (acc * base) % modulus
	}

	return acc
}
