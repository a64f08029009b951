package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/pkg/client"
)

func newClient(c *cli.Context) *client.Client {
	logger := zap.NewNop()
	if c.Bool("debug") {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	return client.NewClient(c.String("server"), nil, logger)
}

// compileJQ returns nil when filter is empty.
func compileJQ(filter string) (*gojq.Code, error) {
	if filter == "" {
		return nil, nil
	}
	query, err := gojq.Parse(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq filter %q: %w", filter, err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq filter %q: %w", filter, err)
	}
	return code, nil
}

// printJSON writes v as indented JSON, or every result of code applied to it.
func printJSON(w io.Writer, v any, code *gojq.Code) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return printRawJSON(w, data, code)
}

func printRawJSON(w io.Writer, data []byte, code *gojq.Code) error {
	var doc any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to decode output: %w", err)
		}
	}
	if code == nil {
		return writeIndented(w, doc)
	}

	iter := code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("jq: %w", err)
		}
		if s, isString := v.(string); isString {
			fmt.Fprintln(w, s)
			continue
		}
		if err := writeIndented(w, v); err != nil {
			return err
		}
	}
}

func writeIndented(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// output prints v to the app writer applying the global --jq filter.
func output(c *cli.Context, v any) error {
	code, err := compileJQ(c.String("jq"))
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, v, code)
}
