// Command hxui lists, renders, lints and previews the stock hxui component
// types.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("error:"), err)
		os.Exit(1)
	}
}
