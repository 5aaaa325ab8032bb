package main

// main is the entry point for the textfile command. Execute (root.go) sets
// up the cobra root command, parses flags, loads configuration and runs the
// batch.
func main() {
	Execute()
}
