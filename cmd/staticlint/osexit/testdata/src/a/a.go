package main

import "os"

func main() {
	defer cleanup()

	if len(os.Args) > 1 {
		os.Exit(2) // want "direct os.Exit call in main function"
	}

	func() {
		os.Exit(3) // want "direct os.Exit call in main function"
	}()

	os.Exit(1) // want "direct os.Exit call in main function"
}

func cleanup() {}

func fail() {
	os.Exit(1)
}
