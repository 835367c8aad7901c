package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/elliemb/eights"
	"github.com/elliemb/eights/server"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	config, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(eights.NewInMemoryGameStore(), config)

	log.Printf("Listening on port %d...", config.Port)
	log.Fatal(s.ListenAndServe())
}
