// Package main provides the entry point for the decksmith CLI.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decksmith/decksmith/internal/catalog"
	"github.com/decksmith/decksmith/internal/output"
	"github.com/decksmith/decksmith/internal/project"
	"github.com/decksmith/decksmith/internal/render"
	"github.com/decksmith/decksmith/internal/resource"
	"github.com/decksmith/decksmith/internal/theme"
)

// parseSetValues parses repeated --set KEY=VALUE flags into placeholders.
func parseSetValues(pairs []string) (render.Placeholders, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := render.Placeholders{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, output.NewUserError(fmt.Sprintf("invalid --set %q, expected KEY=VALUE", pair))
		}
		values[key] = value
	}
	return values, nil
}

// appendShorthand folds a named placeholder flag into the --set pairs.
func appendShorthand(pairs []string, key, value string) []string {
	if value == "" {
		return pairs
	}
	return append(pairs, key+"="+value)
}

// materializeFn runs one materialize operation against the manager.
type materializeFn func(manager *project.Manager, values render.Placeholders) (*project.MaterializeResult, error)

// runMaterialize is the shared body of the slide/page/chart/outline commands:
// parse values, run the operation, map not-found errors, print the result.
func runMaterialize(cmd *cobra.Command, setFlags []string, templateKind resource.Kind, fn materializeFn) error {
	printer := newPrinter(cmd)

	values, err := parseSetValues(setFlags)
	if err != nil {
		printer.Error(err)
		return err
	}

	manager, err := openManager()
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := fn(manager, values)
	if err != nil {
		mapped := mapMaterializeError(err, manager, templateKind)
		printer.Error(mapped)
		return mapped
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("Template", result.Template)
	printer.KeyValue("Written", result.Path)
	return nil
}

// mapMaterializeError converts domain errors to the exit taxonomy and adds
// did-you-mean hints for unknown templates.
func mapMaterializeError(err error, manager *project.Manager, kind resource.Kind) error {
	if errors.Is(err, project.ErrNotFound) {
		return output.NewUserError(err.Error() + ". Run 'decksmith projects' to list projects")
	}
	if kind.Valid() {
		if suggestion := suggestHint(err, manager.Registry().Names(kind)); suggestion != "" {
			return output.NewUserError(err.Error() + suggestion)
		}
	}
	return err
}

// suggestHint formats a did-you-mean suffix for a not-found error.
func suggestHint(err error, candidates []string) string {
	if !errors.Is(err, catalog.ErrNotFound) {
		return ""
	}
	// The requested name is the last colon-separated token of the message.
	msg := err.Error()
	name := strings.TrimSpace(msg[strings.LastIndex(msg, ":")+1:])
	suggestions := theme.Suggest(name, candidates, 3)
	if len(suggestions) == 0 {
		return ""
	}
	return " (did you mean: " + strings.Join(suggestions, ", ") + "?)"
}
