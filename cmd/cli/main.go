// Package main provides a terminal client for the travel planner.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/xiaot623/tripplanner/internal/chatclient"
	"github.com/xiaot623/tripplanner/internal/config"
	"github.com/xiaot623/tripplanner/internal/conversation"
	"github.com/xiaot623/tripplanner/internal/itinerary"
	"github.com/xiaot623/tripplanner/internal/orchestrator"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.BackendURL, "Planner server base URL")
	outDir := flag.String("out", cfg.OutputDir, "Directory for downloads and printable documents")
	flag.Parse()

	log.SetFlags(log.Ltime)

	view := &terminalView{out: os.Stdout}
	conv := conversation.New()
	orch := orchestrator.New(conv, chatclient.NewClient(*addr, cfg.ChatTimeout), view)

	fmt.Printf("Using planner at %s\n", *addr)
	fmt.Println("Commands: /download, /print, /history, /quit")
	orch.Greet()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Println("\nInterrupted")
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "/quit":
			fmt.Println("Bye!")
			return
		case "/history":
			printHistory(os.Stdout, conv.List())
		case "/download":
			it := orch.Itinerary()
			if it == nil {
				fmt.Println("No itinerary yet.")
				continue
			}
			if err := itinerary.Download(itinerary.DirSaver{Dir: *outDir}, it); err != nil {
				log.Printf("Download failed: %v", err)
				continue
			}
			fmt.Printf("Saved %s\n", itinerary.DownloadFilename(it))
		case "/print":
			it := orch.Itinerary()
			if it == nil {
				fmt.Println("No itinerary yet.")
				continue
			}
			printer := &itinerary.FilePrinter{Dir: *outDir, Command: cfg.PrintCommand}
			if err := itinerary.Print(printer, it); err != nil {
				log.Printf("Print failed: %v", err)
				continue
			}
			fmt.Printf("Printable itinerary written to %s\n", printer.LastPath)
		default:
			orch.Submit(ctx, input)
		}
	}
}
