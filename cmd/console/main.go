package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/complyatlas/console/backend"
	"github.com/complyatlas/console/credstore"
	"github.com/complyatlas/console/internal/config"
	"github.com/complyatlas/console/server"
	"github.com/complyatlas/console/server/flowrepo"
	"github.com/complyatlas/console/session"
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; the config falls back to defaults.
	_ = godotenv.Load()

	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	store, err := credstore.NewFileStore(c.GetDataFolder())
	if err != nil {
		return fmt.Errorf("credstore.NewFileStore: %w", err)
	}

	consoleServer := server.New(
		c,
		session.New(store),
		backend.New(c.GetBackendURL()),
		flowrepo.NewInMemoryRepo(),
	)
	defer consoleServer.Close()

	httpServer := &http.Server{Addr: c.GetPort(), Handler: consoleServer}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
