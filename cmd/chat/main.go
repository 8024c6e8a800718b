// Package main is the terminal chat client for the dental booking
// assistant.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abcdental/chat-platform/internal/assistant"
	"github.com/abcdental/chat-platform/internal/config"
	"github.com/abcdental/chat-platform/internal/conversation"
	"github.com/abcdental/chat-platform/internal/directory"
	"github.com/abcdental/chat-platform/internal/picker"
	"github.com/abcdental/chat-platform/internal/render"
	"github.com/abcdental/chat-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	ctx := context.Background()

	store := conversation.NewSessionStore()
	dispatcher := conversation.NewDispatcher(
		store,
		assistant.NewHTTPClient(cfg.AssistantBaseURL, cfg.RequestTimeout),
		cfg.UserID,
		log,
	)
	out := render.New(os.Stdout)

	// Seed the opening messages; the directory client falls back on its own.
	dirClient := directory.NewClient(cfg.DirectoryBaseURL, cfg.RequestTimeout, log)
	conversation.Seed(ctx, store, dirClient, nil)
	out.Transcript(store.All())

	fmt.Println(`Type a message, "pick <n>" to choose a date, "slot <n>" to choose a time, or "quit" to leave.`)

	var active *picker.Picker
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}

		switch {
		case strings.HasPrefix(line, "pick "):
			if active == nil {
				fmt.Println("No availability to pick from yet.")
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "pick ")))
			dates := active.Dates()
			if err != nil || n < 1 || n > len(dates) {
				fmt.Println("No such date.")
				continue
			}
			active.SelectDate(dates[n-1].Date)
			out.Picker(active)

		case strings.HasPrefix(line, "slot "):
			if active == nil {
				fmt.Println("No availability to pick from yet.")
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "slot ")))
			times := active.Times()
			if err != nil || n < 1 || n > len(times) {
				fmt.Println("No such time.")
				continue
			}
			date, tm, ok := active.SelectTime(times[n-1])
			if !ok {
				fmt.Println("Pick a date first.")
				continue
			}
			before := store.Len()
			out.Busy()
			dispatcher.SelectDateTime(ctx, active.MessageID(), date, tm)
			active = renderNew(out, store, before, active)

		default:
			before := store.Len()
			out.Busy()
			dispatcher.Send(ctx, line)
			active = renderNew(out, store, before, active)
		}
	}
}

// renderNew draws messages appended since before and returns the picker for
// the newest availability payload, if one arrived.
func renderNew(out *render.Renderer, store *conversation.Store, before int, active *picker.Picker) *picker.Picker {
	msgs := store.All()
	for _, msg := range msgs[before:] {
		out.Message(msg)
		if msg.HasAvailability() {
			active = picker.New(msg.ID, *msg.Availability)
			out.Picker(active)
		}
	}
	return active
}
