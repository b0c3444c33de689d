package genmain

import (
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v2"

	"github.com/hhubb22/kea-conf-generate/pkg/keactrl"
)

func pushCommand() *cli.Command {
	return &cli.Command{
		Name:  "push",
		Usage: "Test and install a configuration through the control agent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "profile file to render, a built-in example is used when omitted",
			},
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "control agent URL, defaults to $KEA_CTRL_URL",
			},
			&cli.BoolFlag{
				Name:  "test-only",
				Usage: "run config-test but do not install",
			},
			&cli.StringFlag{
				Name:  "id-store",
				Usage: "subnet id store driver: memory|bolt",
			},
			&cli.StringFlag{
				Name:  "id-store-file",
				Usage: "database file for the bolt id store",
			},
		},
		Action: pushAction,
	}
}

func pushAction(c *cli.Context) error {
	doc, diag, err := render(c)
	if err != nil {
		return err
	}

	// partial documents would wipe parts of the running
	// configuration, never install them
	if diag != nil {
		return fmt.Errorf("refusing to push an incomplete document: %s", diag.Message)
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}

	if err := client.ConfigTest(c.Context, doc); err != nil {
		return err
	}
	log.Info("config-test passed")

	if c.Bool("test-only") {
		return nil
	}

	if err := client.ConfigSet(c.Context, doc); err != nil {
		return err
	}
	log.Info("configuration installed")

	return nil
}

func newClient(c *cli.Context) (*keactrl.Client, error) {
	if url := c.String("url"); url != "" {
		return keactrl.New(url)
	}

	return keactrl.NewFromEnv()
}
