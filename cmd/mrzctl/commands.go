package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cedula/internal/mrz"
	"cedula/internal/platform/logger"
	"cedula/internal/scanner"
	"cedula/pkg/requestcontext"
)

const dateLayout = "2006-01-02"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mrzctl",
		Short:         "Decode Colombian identity card MRZ text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("log-level", "l", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newParseCmd(), newCheckDigitCmd())
	return rootCmd
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a three line MRZ and print the document as JSON",
		Long: `Parse reads the three MRZ lines from a file, or from stdin when the
argument is "-" or omitted, and prints the decoded document.

Example:
  printf 'ICCOL000000012505001<<<<<<<<<<\n0403151F3203190COL1234567890\nWALTEROS<<LAURA<<<<<<<<<<<<<<<' | mrzctl parse`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	cmd.Flags().Bool("strict-locality", false, "Fail when the municipality and department are not registered")
	cmd.Flags().String("localities", "", "YAML file replacing the embedded locality table")
	cmd.Flags().String("now", "", "Reference date (YYYY-MM-DD) used to resolve two-digit years")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	strict, err := cmd.Flags().GetBool("strict-locality")
	if err != nil {
		return fmt.Errorf("failed to get strict-locality flag: %w", err)
	}
	localities, err := cmd.Flags().GetString("localities")
	if err != nil {
		return fmt.Errorf("failed to get localities flag: %w", err)
	}
	nowFlag, err := cmd.Flags().GetString("now")
	if err != nil {
		return fmt.Errorf("failed to get now flag: %w", err)
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if nowFlag != "" {
		now, err := time.Parse(dateLayout, nowFlag)
		if err != nil {
			return fmt.Errorf("invalid --now %q: expected YYYY-MM-DD", nowFlag)
		}
		ctx = requestcontext.WithTime(ctx, now)
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	opts, err := scanner.ParserOptions(strict, localities)
	if err != nil {
		return err
	}
	svc, err := scanner.NewService(mrz.NewParser(opts...),
		scanner.WithLogger(logger.NewWithWriter(cmd.ErrOrStderr(), logLevel, "text")),
	)
	if err != nil {
		return err
	}

	doc, err := svc.ParseText(ctx, text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}

func newCheckDigitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-digit <data>",
		Short: "Print the 7-3-1 weighted check digit of an MRZ field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), mrz.ComputeCheckDigit(strings.ToUpper(args[0])))
			return err
		},
	}
}
