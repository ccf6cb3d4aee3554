package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vburojevic/pocket-cli/internal/commands"
	"github.com/vburojevic/pocket-cli/internal/output"
)

// enumFlag is an optional enum-valued flag; values are checked at parse
// time and the target stays nil until the flag is given.
type enumFlag[T ~string] struct {
	dst   **T
	parse func(string) (T, error)
	typ   string
}

func newEnumFlag[T ~string](dst **T, typ string, parse func(string) (T, error)) *enumFlag[T] {
	return &enumFlag[T]{dst: dst, parse: parse, typ: typ}
}

func (f *enumFlag[T]) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return string(**f.dst)
}

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.dst = &v
	return nil
}

func (f *enumFlag[T]) Type() string { return f.typ }

type formatFlag struct {
	dst *output.Format
}

func (f formatFlag) String() string { return string(*f.dst) }

func (f formatFlag) Set(s string) error {
	v, err := output.ParseFormat(s)
	if err != nil {
		return err
	}
	*f.dst = v
	return nil
}

func (f formatFlag) Type() string { return "format" }

// timeFlag parses RFC 3339 timestamps.
type timeFlag struct {
	dst **time.Time
}

func (f timeFlag) String() string {
	if *f.dst == nil {
		return ""
	}
	return (*f.dst).Format(time.RFC3339)
}

func (f timeFlag) Set(s string) error {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("expected RFC 3339 time such as 2024-01-02T15:04:05Z: %w", err)
	}
	*f.dst = &t
	return nil
}

func (f timeFlag) Type() string { return "time" }

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", commands.ErrUsage, err)
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usageError(cobra.ExactArgs(n)(cmd, args))
	}
}

func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usageError(cobra.RangeArgs(min, max)(cmd, args))
	}
}
