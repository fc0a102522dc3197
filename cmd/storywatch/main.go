// Package main is the entry point for the StoryReel terminal dashboard.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/storyreel/storyreel/internal/watch"
)

func main() {
	_ = godotenv.Load()

	apiURL := os.Getenv("STORYREEL_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	p := tea.NewProgram(watch.NewModel(apiURL))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
