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
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-github-login/github"
	"github.com/jrsteele09/go-github-login/internal/config"
	"github.com/jrsteele09/go-github-login/server"
	"github.com/jrsteele09/go-github-login/server/loginsession"
)

func main() {
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

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v\n", err)
	}

	c := config.New()
	displayAppname(c.GetAppName())

	provider, err := github.NewProvider(&github.Config{
		ClientID:       c.GetGithubClientID(),
		ClientSecret:   c.GetGithubClientSecret(),
		CallbackURL:    c.GetGithubCallbackURL(),
		RequestTimeout: c.GetGithubRequestTimeout(),
	})
	if err != nil {
		return fmt.Errorf("github.NewProvider: %w", err)
	}

	srv := server.New(c, provider, loginsession.NewInMemoryLoginSessionRepo())

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go srv.RunSessionSweeper(sweepCtx)

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
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
