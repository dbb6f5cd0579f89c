package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/raphaelvigee/idtoname/cmd"
)

func main() {
	// stdout carries the generated class.
	log.SetOutput(os.Stderr)

	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})

	cmd.Execute()
}
