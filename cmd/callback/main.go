package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"aquaflow/pkg/clients/callback"
	"aquaflow/pkg/site"
	"aquaflow/pkg/tui"
)

func main() {
	// A missing .env is fine for the terminal client
	_ = godotenv.Load()

	defaultServer := os.Getenv("CALLBACK_SERVER_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	server := flag.String("server", defaultServer, "base URL of the callback site")
	flag.Parse()

	title := "Callback"
	if page, err := site.LoadPage(); err == nil {
		title = page.BusinessName
	} else {
		log.Printf("Error loading page content: %v", err)
	}

	client := callback.NewClient(*server)
	p := tea.NewProgram(tui.New(client, title, *server))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running callback client: %v\n", err)
		os.Exit(1)
	}
}
