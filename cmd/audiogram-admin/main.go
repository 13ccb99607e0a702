// Command audiogram-admin curates the animal audiogram database through its
// admin API.
package main

import "github.com/mesh-intelligence/audiograms/internal/cli"

func main() {
	cli.Execute()
}
