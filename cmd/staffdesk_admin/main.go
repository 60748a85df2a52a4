// Command staffdesk_admin is a terminal client for a StaffDesk server. It
// drives the same sync layer the dashboard uses: credentials persist between
// runs, event requests fall back to the legacy singular routes, and list
// envelopes are normalized regardless of which shape the server emits.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caterops/staffdesk/pkg/apiclient"
	"github.com/caterops/staffdesk/pkg/credstore"
	"github.com/caterops/staffdesk/pkg/store"
)

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "StaffDesk server base URL")
	credPath := flag.String("credentials", defaultCredPath(), "credential file path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	creds := credstore.NewFileStore(*credPath)
	client := apiclient.New(*baseURL,
		apiclient.WithTokenSource(apiclient.TokenFunc(creds.Token)),
		apiclient.WithLogger(logger),
	)
	st := store.New(creds, store.WithLogger(logger))

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, client, st, creds, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *apiclient.Client, st *store.Store, creds credstore.Store, args []string) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		st.LoginStart()
		result, err := client.Login(ctx, args[1], args[2])
		if err != nil {
			st.LoginFailure(err.Error())
			return err
		}
		st.LoginSuccess(result.Token, result.User)
		fmt.Printf("logged in as %s (%s)\n", result.User.Name, result.User.Email)
		return nil

	case "logout":
		st.Logout()
		fmt.Println("logged out")
		return nil

	case "whoami":
		auth := st.Snapshot().Auth
		if !auth.IsAuthenticated() || auth.User == nil {
			return fmt.Errorf("not logged in")
		}
		return printJSON(auth.User)

	case "events":
		return runEvents(ctx, client, st, args[1:])

	case "users":
		return runUsers(ctx, client, args[1:])

	case "boys":
		return runList(ctx, client, apiclient.Boys, args[1:])

	case "bookings":
		return runList(ctx, client, apiclient.Bookings, args[1:])

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runEvents(ctx context.Context, client *apiclient.Client, st *store.Store, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		events, err := apiclient.List(ctx, client, apiclient.Events)
		if err != nil {
			return err
		}
		st.SetEvents(events)
		return printJSON(events)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: events delete <id>")
		}
		if err := apiclient.Remove(ctx, client, apiclient.Events, args[1]); err != nil {
			return err
		}
		fmt.Println("deleted", args[1])
		return nil
	default:
		return fmt.Errorf("unknown events subcommand %q", args[0])
	}
}

func runUsers(ctx context.Context, client *apiclient.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		users, err := apiclient.List(ctx, client, apiclient.Users)
		if err != nil {
			return err
		}
		return printJSON(users)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: users delete <id>")
		}
		if err := apiclient.Remove(ctx, client, apiclient.Users, args[1]); err != nil {
			return err
		}
		fmt.Println("deleted", args[1])
		return nil
	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

func runList[T any](ctx context.Context, client *apiclient.Client, r apiclient.Resource[T], args []string) error {
	if len(args) > 0 && args[0] != "list" {
		return fmt.Errorf("unknown %s subcommand %q", r.Name, args[0])
	}
	items, err := apiclient.List(ctx, client, r)
	if err != nil {
		return err
	}
	return printJSON(items)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func defaultCredPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".staffdesk-credentials.json"
	}
	return filepath.Join(home, ".staffdesk", "credentials.json")
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: staffdesk_admin [-base URL] <command>

commands:
  login <email> <password>   authenticate and persist the session
  logout                     clear the persisted session
  whoami                     show the logged-in user
  events [list|delete <id>]  list or delete events
  users [list|delete <id>]   list or delete users
  boys [list]                list the staff roster
  bookings [list]            list bookings`)
}
