package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/statusprobe/backend-contract-tests/apitests"
	"github.com/statusprobe/backend-contract-tests/config"
	"github.com/statusprobe/backend-contract-tests/framework"
	"github.com/statusprobe/backend-contract-tests/logging"
)

const structuredLogFileName = "probes.log"

// errTestsFailed is returned by the command when the run completed but some probe failed.
// The report has already been printed, so main only turns it into the exit code.
var errTestsFailed = errors.New("some probes failed")

func main() {
	cmd := newRootCommand(os.Stdout, os.Args[0])
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer, program string) *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "backend-contract-tests",
		Short: "Run the backend API probes against a running service",
		Long: `Runs a fixed, ordered battery of black-box HTTP probes against the backend API
(root greeting, status list and create, persistence, CORS, error handling), prints a
report and exits with status 0 only if every probe passed.

The backend URL is read from an env file (REACT_APP_BACKEND_URL by default) and "/api"
is appended to it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, program, &params)
		},
	}
	params.addFlags(cmd)
	return cmd
}

func run(out io.Writer, program string, params *commandParams) error {
	settings, err := config.LoadSettings(params.settingsFile)
	if err != nil {
		return err
	}
	if params.envFile != "" {
		settings.EnvFile = params.envFile
	}
	if params.strictValidation {
		settings.StrictValidation = true
	}

	baseURL, err := resolveBaseURL(params, settings)
	if err != nil {
		return fmt.Errorf("could not determine backend URL: %w", err)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(out, "", log.LstdFlags)
	}
	mainDebugLogger.Printf("Settings: %+v", settings)

	testLogger := framework.MultiTestLogger{&ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}}
	if params.logDir != "" {
		zapLogger, err := logging.NewFileLogger(params.logDir, structuredLogFileName)
		if err != nil {
			return fmt.Errorf("could not create structured log: %w", err)
		}
		structured := framework.NewStructuredTestLogger(zapLogger)
		defer func() { _ = structured.Sync() }()
		testLogger = append(testLogger, structured)
	}

	client := apitests.NewClient(baseURL, settings.RequestTimeout())
	fmt.Fprintf(out, "Testing backend at: %s\n", client.BaseURL())
	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)

	suiteParams := apitests.SuiteParams{
		Origin:           settings.Origin,
		StrictValidation: settings.StrictValidation,
		DetailLimit:      settings.DetailLimit,
	}
	results := apitests.RunTestSuite(client, suiteParams, params.filters.AsFilter, testLogger)

	fmt.Fprintln(out)
	framework.PrintResults(out, results)
	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To repeat only the failed probes with debug output:")
		fmt.Fprintf(out, "  %s\n", params.rerunCommand(program, results.Failures))
		return errTestsFailed
	}
	return nil
}

func resolveBaseURL(params *commandParams, settings config.Settings) (string, error) {
	if params.serviceURL != "" {
		return config.JoinBaseURL(params.serviceURL, settings.APISuffix)
	}
	return config.ResolveBaseURL(settings.EnvFile, settings.URLKey, settings.APISuffix)
}
