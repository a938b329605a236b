package main

import (
	"log"

	"github.com/saadjs/produce-cli/cmd/produce"
	"github.com/saadjs/produce-cli/internal/app"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("produce: ")
	if _, err := app.LoadEnv(); err != nil {
		log.Printf("ignoring .env: %v", err)
	}
	produce.Execute()
}
