package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/entityvalidator/internal/customer"
	"github.com/dmitrymomot/entityvalidator/pkg/registry"
)

// kind maps a record kind named on the command line to its entity decoder.
type kind struct {
	name   string
	entity string
	decode func(node *yaml.Node) (any, error)
}

var kinds = []kind{
	{name: "customer", entity: "customer.Customer", decode: decodeCustomer},
}

func findKind(name string) (kind, error) {
	i := slices.IndexFunc(kinds, func(k kind) bool { return k.name == strings.ToLower(name) })
	if i < 0 {
		names := make([]string, len(kinds))
		for j, k := range kinds {
			names[j] = k.name
		}
		return kind{}, fmt.Errorf("unknown kind %q (known: %s)", name, strings.Join(names, ", "))
	}
	return kinds[i], nil
}

func newRegistry(log *slog.Logger) (*registry.Registry, error) {
	r := registry.New(registry.WithLogger(log))
	if err := registry.Register(r, customer.NewValidator()); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeCustomer(node *yaml.Node) (any, error) {
	var rec customer.Record
	if err := node.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %w", customer.ErrMalformedRecord, err)
	}
	return rec.Customer()
}

func newKindsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds that can be validated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registered := a.registry.Types()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range kinds {
				status := "not registered"
				if slices.Contains(registered, k.entity) {
					status = "registered"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", k.name, k.entity, status)
			}
			return w.Flush()
		},
	}
}
