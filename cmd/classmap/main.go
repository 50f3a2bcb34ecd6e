// Package main provides the classmap CLI: a data-modeling backend serving
// classes, attributes, properties, data records, and connections over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
