// Command circle prints the properties of a circle and classifies points
// against it.
package main

import "github.com/mesh-intelligence/circles/internal/cli"

func main() {
	cli.Execute()
}
