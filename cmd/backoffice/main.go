// Command backoffice is a terminal front end for the back-office REST
// backend. It keeps a logged-in session on disk and exposes the resource
// clients as subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MbolafyDev/go-backoffice/gateway"
	"github.com/MbolafyDev/go-backoffice/internal/config"
	"github.com/MbolafyDev/go-backoffice/services"
	"github.com/MbolafyDev/go-backoffice/session"
	"github.com/MbolafyDev/go-backoffice/tokens"
)

// app holds everything the subcommands need.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	tokens  tokens.Repo
	gw      *gateway.Gateway
	session *session.Store
	api     *services.Services
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool
	a := &app{}

	cmd := &cobra.Command{
		Use:           "backoffice",
		Short:         "Back-office sales, delivery and invoicing client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		statusCmd(a),
		clientsCmd(a),
		ordersCmd(a),
		invoiceCmd(a),
	)
	return cmd
}

func (a *app) init(verbose bool) error {
	a.cfg = config.New()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	a.tokens = tokens.NewFileStore(a.cfg.GetTokenFile())

	gw, err := gateway.New(
		a.cfg.GetBaseURL(),
		a.tokens,
		gateway.WithTimeout(a.cfg.GetRequestTimeout()),
		gateway.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	a.gw = gw

	store, err := session.NewStore(gw, a.tokens, session.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.session = store
	a.api = services.New(gw)
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
