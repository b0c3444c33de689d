package keactrl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hhubb22/kea-conf-generate/core/keacfg"
)

// ServiceDHCP4 addresses the DHCPv4 daemon behind the control agent
const ServiceDHCP4 = "dhcp4"

// SubnetInfo is one entry of a subnet4-list answer
type SubnetInfo struct {
	ID     uint64
	Subnet string
}

// ConfigTest asks the DHCPv4 daemon to check a rendered document
// without applying it.
func (c *Client) ConfigTest(ctx context.Context, doc *keacfg.Document) error {
	return c.sendConfig(ctx, "config-test", doc)
}

// ConfigSet installs a rendered document as the running DHCPv4
// configuration. The daemon keeps its previous configuration when the
// new one is rejected.
func (c *Client) ConfigSet(ctx context.Context, doc *keacfg.Document) error {
	return c.sendConfig(ctx, "config-set", doc)
}

func (c *Client) sendConfig(ctx context.Context, command string, doc *keacfg.Document) error {
	args, err := arguments(doc)
	if err != nil {
		return err
	}

	resp, err := c.Send(ctx, Request{
		Command:   command,
		Service:   []string{ServiceDHCP4},
		Arguments: args,
	})
	if err != nil {
		return err
	}

	if err := resp.Err(); err != nil {
		return fmt.Errorf("%s: %s", command, err)
	}

	return nil
}

// ConfigGet fetches the running DHCPv4 configuration
func (c *Client) ConfigGet(ctx context.Context) (map[string]any, error) {
	resp, err := c.Send(ctx, Request{
		Command: "config-get",
		Service: []string{ServiceDHCP4},
	})
	if err != nil {
		return nil, err
	}

	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("config-get: %s", err)
	}

	return resp.Arguments, nil
}

// ListSubnets returns the subnets configured on the DHCPv4 daemon
func (c *Client) ListSubnets(ctx context.Context) ([]SubnetInfo, error) {
	resp, err := c.Send(ctx, Request{
		Command: "subnet4-list",
		Service: []string{ServiceDHCP4},
	})
	if err != nil {
		return nil, err
	}

	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("subnet4-list: %s", err)
	}

	if resp.Result == ResultEmpty {
		return nil, nil
	}

	subnets, ok := resp.Arguments["subnets"].([]any)
	if !ok {
		return nil, errors.New("unexpected subnet4-list response shape")
	}

	infos := make([]SubnetInfo, 0, len(subnets))
	for _, s := range subnets {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}

		info := SubnetInfo{}
		if sub, ok := m["subnet"].(string); ok {
			info.Subnet = sub
		}
		if id, ok := m["id"].(float64); ok {
			info.ID = uint64(id)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// arguments converts the rendered document into the generic map the
// wire format expects, the daemon wants the whole configuration
// nested below its top level element.
func arguments(doc *keacfg.Document) (map[string]any, error) {
	blob, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var args map[string]any
	if err := json.Unmarshal(blob, &args); err != nil {
		return nil, err
	}

	return args, nil
}
