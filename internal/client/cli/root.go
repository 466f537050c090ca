package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	parts := []string{}
	if badge := a.auth.BadgeNumber(context.Background()); badge != "" && a.isUnlocked() {
		parts = append(parts, badge)
	}
	if a.watcher.Online() {
		parts = append(parts, "online")
	} else {
		parts = append(parts, "offline")
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root runs the interactive REPL until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "MANTIS field client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.Login(ctx)

	for {
		fmt.Fprintf(a.out, "mantis %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isUnlocked() {
				fmt.Fprintln(a.out, "Available commands: record, status, list, sync, retry <id>, clearsynced, clearqueue, setpin, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, unlock")
			}

		case "login":
			a.Login(ctx)
		case "unlock":
			a.Unlock(ctx)
		case "setpin":
			a.SetPin(ctx)
		case "record":
			a.record(ctx)
		case "status":
			a.status(ctx)
		case "list":
			a.list(ctx)
		case "sync":
			a.syncNow(ctx)
		case "retry":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: retry <id>")
				continue
			}
			a.retry(ctx, args[0])
		case "clearsynced":
			a.clearSynced(ctx)
		case "clearqueue":
			a.clearQueue(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
