// Package genmain wires the command line interface of the generator
package genmain

import (
	"fmt"
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/hhubb22/kea-conf-generate/core/option"
	"github.com/hhubb22/kea-conf-generate/internal/settings"

	// import all supported id store drivers
	_ "github.com/hhubb22/kea-conf-generate/core/idstore/drivers"
)

var appVersion = "v0.1.0"

// Run starts the command line interface and blocks until it finished
func Run() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("%s", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "kea-conf-generate",
		Usage:   "generate and install Kea DHCPv4 configurations",
		Version: appVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug|info|warn|error, defaults to $LOG_LEVEL",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			generateCommand(),
			pushCommand(),
			optionsCommand(),
		},
	}
}

func setup(c *cli.Context) error {
	settings.Init()

	level := c.String("log-level")
	if level == "" {
		level = viper.GetString(settings.LOG_LEVEL)
	}

	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(l)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		log.SetHandler(clihandler.New(os.Stdout))
	}

	return nil
}

func optionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "options",
		Usage: "List the DHCP options known to the generator",
		Action: func(c *cli.Context) error {
			for _, name := range option.Names() {
				code, _ := option.Code(name)
				fmt.Printf("%-26s code %-3d %s\n", name, code.Code(), code)
			}

			return nil
		},
	}
}
