package main

import (
	"log"

	"github.com/avc-dev/shortlink/internal/app"
)

func main() {
	if err := app.RunVisitCounter(); err != nil {
		log.Fatal(err)
	}
}
