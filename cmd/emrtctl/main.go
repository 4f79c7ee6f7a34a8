// Command emrtctl inspects and drives the emrt garbage collector standalone,
// without a full interpreter attached: useful for demonstrating collection
// behavior and reporting heap statistics from the command line.
package main

func main() {
	execute()
}
