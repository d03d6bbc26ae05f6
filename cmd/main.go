package main

// main is the entry point of the hipchat CLI.
// It delegates initialization and execution to Execute, which sets up
// the Cobra command structure defined in root.go.
func main() {
	Execute()
}
