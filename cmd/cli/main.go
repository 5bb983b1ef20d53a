package main

import (
	log "github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
