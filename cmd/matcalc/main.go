// SPDX-License-Identifier: MIT

// Command matcalc evaluates matrix operations over YAML matrix documents.
//
//	matcalc det -f a.yaml
//	matcalc mul -f a.yaml -f b.yaml --output json
//	cat pair.yaml | matcalc add -f -
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
