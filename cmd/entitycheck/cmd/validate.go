package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/entityvalidator/pkg/logger"
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

// ErrRecordsFailed is returned when at least one record is malformed or invalid.
var ErrRecordsFailed = errors.New("some records failed validation")

type validateOptions struct {
	kind  string
	async bool
}

func newValidateCommand(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a YAML or JSON list of records",
		Long: `Validates every record in FILE and prints one line per record:

  record 0: ok
  record 1: Email address is not valid.

FILE must hold a YAML or JSON list. Use "-" to read standard input.
The command fails when any record is malformed or invalid.

Examples:
  entitycheck validate customers.yaml
  entitycheck validate --async customers.json
  cat customers.yaml | entitycheck validate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "customer", "record kind, see the kinds command")
	cmd.Flags().BoolVar(&opts.async, "async", false, "validate records concurrently")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, path string, opts *validateOptions) error {
	ctx := cmd.Context()
	start := time.Now()

	k, err := findKind(opts.kind)
	if err != nil {
		return err
	}

	nodes, err := readRecords(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	log := a.log.With(logger.Source(path), logger.Kind(k.name))

	results := make([]string, len(nodes))
	failed := 0
	pending := make(map[int]*validator.Future)

	for i := range nodes {
		entity, err := k.decode(&nodes[i])
		if err != nil {
			results[i] = "malformed: " + oneLine(err)
			failed++
			log.WarnContext(ctx, "record rejected", logger.Record(i), logger.Error(err))
			continue
		}

		if opts.async {
			future, err := a.registry.ValidateAnyAsync(ctx, entity)
			if err != nil {
				return err
			}
			pending[i] = future
			continue
		}

		out, err := a.registry.ValidateAny(ctx, entity)
		if err != nil {
			return err
		}
		if !report(ctx, log, i, out, results) {
			failed++
		}
	}

	for i := range nodes {
		future, ok := pending[i]
		if !ok {
			continue
		}
		out, err := await(future, a.settings.AsyncTimeout)
		if err != nil {
			results[i] = "error: " + oneLine(err)
			failed++
			log.ErrorContext(ctx, "record validation did not complete", logger.Record(i), logger.Error(err))
			continue
		}
		if !report(ctx, log, i, out, results) {
			failed++
		}
	}

	w := cmd.OutOrStdout()
	for i, line := range results {
		fmt.Fprintf(w, "record %d: %s\n", i, line)
	}

	log.InfoContext(ctx, "validation finished",
		"records", len(nodes),
		"failed", failed,
		logger.Duration(time.Since(start)),
	)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRecordsFailed, failed, len(nodes))
	}
	return nil
}

// report stores the line for record i and reports whether it passed.
func report(ctx context.Context, log *slog.Logger, i int, out validator.Outcome, results []string) bool {
	log.DebugContext(ctx, "record validated", logger.Record(i), logger.Outcome(out))
	if out.Passed {
		results[i] = "ok"
		return true
	}
	results[i] = out.Message
	return false
}

func await(future *validator.Future, timeout time.Duration) (validator.Outcome, error) {
	if timeout <= 0 {
		return future.Await()
	}
	return future.AwaitWithTimeout(timeout)
}

// oneLine keeps a report to a single line; yaml type errors span several.
func oneLine(err error) string {
	parts := strings.Split(err.Error(), "\n")
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}

func readRecords(stdin io.Reader, path string) ([]yaml.Node, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("decode records from %s: %w", path, err)
	}
	return nodes, nil
}
