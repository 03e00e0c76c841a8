package main

import (
	"log"
	sys "os"
)

type exiter struct{}

func (exiter) Exit(int) {}

func main() {
	exiter{}.Exit(1)
	log.Println("stopping")
	sys.Exit(0) // want "direct os.Exit call in main function"
}
