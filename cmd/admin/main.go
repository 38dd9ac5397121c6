package main

import (
	"care-chat/auth"
	"care-chat/domain"
	"care-chat/internal"
	"care-chat/repositories"
	"care-chat/runtime"
	"care-chat/services"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// deps is what every subcommand may use. The chat server must be stopped: Badger holds a directory lock.
type deps struct {
	log    *slog.Logger
	config internal.Config
	db     *badger.DB
	users  *repositories.UserRepository
}

type command struct {
	usage string
	run   func(d deps, args []string) error
}

var commands = map[string]command{
	"seed":       {"seed -file users.yaml", seed},
	"users":      {"users", listUsers},
	"contacts":   {"contacts -user <id>", listContacts},
	"history":    {"history -a <id> -b <id>", showHistory},
	"clear-user": {"clear-user -user <id>", clearUser},
	"clear-all":  {"clear-all -yes", clearAll},
	"token":      {"token -username <name> -password <secret>", issueToken},
}

var (
	title   = color.New(color.BgBlack, color.FgGreen)
	warning = color.New(color.FgYellow)
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Admin error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	if len(args) == 0 {
		usage()
		return exitConfig, fmt.Errorf("missing subcommand")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage()
		return exitConfig, fmt.Errorf("unknown subcommand %q", args[0])
	}

	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithSyncWrites(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed (is the server running?): %w", err)
	}
	defer func() { _ = db.Close() }()

	d := deps{log: log, config: config, db: db, users: repositories.NewUserRepository(db)}
	if err = cmd.run(d, args[1:]); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func usage() {
	names := lo.Keys(commands)
	sort.Strings(names)
	fmt.Fprintln(os.Stderr, "usage: admin <subcommand> [flags]")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
}

// seedUser is one directory entry of a seed file. Password is optional.
type seedUser struct {
	domain.User `yaml:",inline"`
	Password    string `yaml:"password"`
}

func seed(d deps, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := fs.String("file", "users.yaml", "YAML file listing users")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	var entries []seedUser
	if err = yaml.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parsing %s: %w", *file, err)
	}

	authService := services.NewAuthService(d.users, tokenIssuer(d.config))
	created := 0
	for _, entry := range entries {
		if entry.Password != "" {
			err = authService.Register(entry.User, entry.Password)
		} else {
			err = d.users.CreateUser(entry.User)
		}
		if err != nil {
			fmt.Println(warning.Render(fmt.Sprintf("skipped %s: %v", entry.ID, err)))
			continue
		}
		created++
	}
	fmt.Println(title.Render(fmt.Sprintf(" %d/%d users seeded ", created, len(entries))))
	return nil
}

func listUsers(d deps, _ []string) error {
	users, err := d.users.ListUsers()
	if err != nil {
		return err
	}
	table := newTable("ID", "Name", "Username", "Role", "Physician", "Patients", "Login")
	for _, u := range users {
		table.Append([]string{
			u.ID, u.Name, u.Username, string(u.Role), u.PhysicianID,
			strings.Join(u.PatientIDs, ","),
			strconv.FormatBool(u.PasswordHash != ""),
		})
	}
	table.Render()
	return nil
}

func listContacts(d deps, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	userID := fs.String("user", "", "user ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	contacts, err := services.NewContactService(d.log, d.users, true).Contacts(*userID)
	if err != nil {
		return err
	}
	table := newTable("ID", "Name", "Role")
	for _, u := range contacts {
		table.Append([]string{u.ID, u.Name, string(u.Role)})
	}
	table.Render()
	return nil
}

func showHistory(d deps, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	a := fs.String("a", "", "first participant")
	b := fs.String("b", "", "second participant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *a == "" || *b == "" {
		return fmt.Errorf("-a and -b are required")
	}

	return withHistory(d, func(history *services.HistoryService) error {
		messages, err := history.Conversation(*a, *b)
		if err != nil {
			return err
		}
		fmt.Println(title.Render(" " + domain.NewConversationKey(*a, *b).String() + " "))
		table := newTable("Time", "From", "To", "Content")
		for _, m := range messages {
			table.Append([]string{m.Timestamp.Local().Format(time.DateTime), m.SenderName, m.ReceiverID, m.Content})
		}
		table.Render()
		return nil
	})
}

func clearUser(d deps, args []string) error {
	fs := flag.NewFlagSet("clear-user", flag.ContinueOnError)
	userID := fs.String("user", "", "user ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == "" {
		return fmt.Errorf("-user is required")
	}

	return withHistory(d, func(history *services.HistoryService) error {
		count, err := history.ClearForUser(*userID)
		if err != nil {
			return err
		}
		fmt.Println(title.Render(fmt.Sprintf(" %d conversations removed for %s ", count, *userID)))
		return nil
	})
}

func clearAll(d deps, args []string) error {
	fs := flag.NewFlagSet("clear-all", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "confirm deletion of every conversation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return fmt.Errorf("refusing to clear every conversation without -yes")
	}

	return withHistory(d, func(history *services.HistoryService) error {
		if err := history.ClearAll(); err != nil {
			return err
		}
		fmt.Println(title.Render(" All conversations removed "))
		return nil
	})
}

func issueToken(d deps, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	username := fs.String("username", "", "directory username")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !d.config.TokenMode() {
		return fmt.Errorf("TOKEN_SECRET is not set")
	}

	token, err := services.NewAuthService(d.users, tokenIssuer(d.config)).Login(*username, *password)
	if err != nil {
		return err
	}
	fmt.Println(token.String())
	return nil
}

func withHistory(d deps, fn func(history *services.HistoryService) error) error {
	repository, err := repositories.NewHistoryRepository(d.db, d.log)
	if err != nil {
		return err
	}
	defer func() { _ = repository.Close() }()

	store := runtime.NewHistoryStore(d.log, repository)
	if err = store.Load(); err != nil {
		return err
	}
	return fn(services.NewHistoryService(d.log, store))
}

func tokenIssuer(config internal.Config) auth.TokenIssuer {
	return auth.NewTokenIssuer(config.TokenSecret, config.TokenDuration)
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
