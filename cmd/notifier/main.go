// Package main implements the entry point for the due-task notifier, the
// batch service that reminds users about tasks approaching their due time
// by email and through the downstream notification and task services.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"
)

func main() {
	once := flag.Bool("once", false, "run a single invocation at the current time and exit")
	skipMigrations := flag.Bool("skip-migrations", false, "do not run database migrations at startup")
	flag.Parse()

	app, err := newApplication(*skipMigrations)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.close()

	if *once {
		report := app.orchestrator.Run(context.Background(), time.Now())
		if !report.Completed() {
			os.Exit(1)
		}
		return
	}

	if err := app.serve(); err != nil {
		app.logger.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
