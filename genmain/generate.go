package genmain

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v2"

	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"github.com/hhubb22/kea-conf-generate/core/keacfg"
	"github.com/hhubb22/kea-conf-generate/core/profile"
	"github.com/hhubb22/kea-conf-generate/core/utils/iface"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Render a DHCPv4 configuration document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "profile file to render, a built-in example is used when omitted",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the document to a file instead of stdout",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "number of spaces used for indentation",
				Value: 2,
			},
			&cli.BoolFlag{
				Name:  "allow-partial",
				Usage: "emit incomplete documents instead of failing",
			},
			&cli.StringFlag{
				Name:  "id-store",
				Usage: "subnet id store driver: memory|bolt",
			},
			&cli.StringFlag{
				Name:  "id-store-file",
				Usage: "database file for the bolt id store",
			},
			&cli.BoolFlag{
				Name:  "check-interfaces",
				Usage: "warn about interfaces missing on this host",
			},
		},
		Action: generateAction,
	}
}

func generateAction(c *cli.Context) error {
	doc, diag, err := render(c)
	if err != nil {
		return err
	}

	if diag != nil {
		log.Warnf("document is incomplete: %s", diag.Message)
		if !c.Bool("allow-partial") {
			return diag
		}
	}

	blob, err := doc.Dump(c.Int("indent"))
	if err != nil {
		return err
	}

	if output := c.String("output"); output != "" {
		return os.WriteFile(output, append(blob, '\n'), 0o644)
	}

	fmt.Println(string(blob))

	return nil
}

// render loads the profile, applies it and renders the document. The
// returned diagnostic is nil for complete documents.
func render(c *cli.Context) (*keacfg.Document, *keacfg.Diagnostic, error) {
	p, err := loadProfile(c)
	if err != nil {
		return nil, nil, err
	}

	ids, err := openIDStore(c)
	if err != nil {
		return nil, nil, err
	}
	if ids != nil {
		defer ids.Close()
	}

	d, err := p.Apply(c.Context, log.Log, ids)
	if err != nil {
		return nil, nil, err
	}

	if c.Bool("check-interfaces") {
		warnMissingInterfaces(d.Interfaces.Names())
	}

	doc, diag := keacfg.NewKeaConfig(d).Render()

	return doc, diag, nil
}

func loadProfile(c *cli.Context) (*profile.Profile, error) {
	path := c.String("profile")
	if path == "" {
		log.Info("no profile given, using the built-in example")
		return builtinProfile(), nil
	}

	p, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	p.Correct()

	return p, nil
}

// builtinProfile mirrors the example server setup from the Kea ARM,
// handy for a quick smoke test of the generator.
func builtinProfile() *profile.Profile {
	persist := true

	return &profile.Profile{
		ValidLifetime: 7200,
		Interfaces:    []string{"enp0s1"},
		LeaseDatabase: &profile.LeaseDatabase{
			Type:    "memfile",
			Persist: &persist,
			Name:    "kea-leases4.csv",
		},
		Subnet4: []profile.Subnet{
			{
				Subnet: "192.168.50.0/24",
				Pools:  []profile.Pool{{Low: "192.168.50.10", High: "192.168.50.20"}},
			},
		},
		OptionData: []profile.Option{
			{Name: "domain-name-servers", Data: "192.168.50.1, 8.8.8.8", AlwaysSend: true},
			{Name: "routers", Data: "192.168.50.1"},
		},
	}
}

func openIDStore(c *cli.Context) (idstore.Store, error) {
	driver := c.String("id-store")
	if driver == "" {
		return nil, nil
	}

	args := map[string][]string{}
	if file := c.String("id-store-file"); file != "" {
		args["file"] = []string{file}
	}

	return idstore.Open(driver, args)
}

func warnMissingInterfaces(names []string) {
	missing, err := iface.Missing(names)
	if err != nil {
		log.Warnf("failed to inspect host interfaces: %s", err)
		return
	}

	for _, name := range missing {
		log.Warnf("interface %s not found on this host", name)
	}
}
