package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Mithun19978/AlpenLuce/api"
	"github.com/Mithun19978/AlpenLuce/internal/config"
	"github.com/Mithun19978/AlpenLuce/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("Error running command")
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New: %w", err)
	}
	setupLogging(cfg)

	if len(args) == 0 {
		displayAppname(cfg.AppName)
		usage()
		return nil
	}

	store := session.NewFileStoreAt(cfg.SessionFile)
	sess, err := session.NewManager(store)
	if err != nil {
		return fmt.Errorf("session.NewManager: %w", err)
	}

	client, err := api.NewClient(cfg.BaseURL, sess,
		api.WithOnSessionExpired(func() {
			log.Warn().Msg("Session expired, please log in again")
		}),
	)
	if err != nil {
		return fmt.Errorf("api.NewClient: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "login":
		return cmdLogin(ctx, client, args[1:])
	case "logout":
		client.Logout(ctx)
		return nil
	case "whoami":
		return cmdWhoami(sess)
	case "garments":
		return cmdGarments(ctx, client)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: alpenluce login <username>")
	}
	username := args[0]

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	identity, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", identity.Username, identity.Role)
	return nil
}

func cmdWhoami(sess *session.Manager) error {
	identity, ok := sess.Identity()
	if !ok {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s (%s)\n", identity.Username, identity.Role)
	return nil
}

func cmdGarments(ctx context.Context, client *api.Client) error {
	garments, err := client.Garments().List(ctx)
	if err != nil {
		return err
	}
	for _, g := range garments {
		fmt.Printf("%4d  %-30s %-12s %8.2f\n", g.ID, g.Name, g.GarmentType, float64(g.BasePrice)/100)
	}
	return nil
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func usage() {
	fmt.Println("usage: alpenluce <login|logout|whoami|garments>")
}
