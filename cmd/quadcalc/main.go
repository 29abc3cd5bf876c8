// cmd/quadcalc/main.go
package main

import "github.com/ajroetker/go-quadrature/cmd/quadcalc/quadcalc"

// main starts the quadcalc CLI application by delegating to the cobra root
// command defined in the quadcalc package.
func main() {
	quadcalc.Execute()
}
