package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"checkers/internal/cli"
	"checkers/internal/service"
	"checkers/internal/storage"
	clitransport "checkers/internal/transport/cli"
)

func main() {
	storagePath := flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
	flag.Parse()

	var store *storage.Store
	if *storagePath != "" {
		var err error
		store, err = storage.NewStore(*storagePath, false)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
	}

	svc := service.New(store)
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Printf("Warning: failed to close cleanly: %v\n", err)
		}
	}()

	view := cli.New(os.Stdin, os.Stdout)
	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}
