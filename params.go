package main

import (
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"

	"github.com/statusprobe/backend-contract-tests/framework"
)

type commandParams struct {
	envFile          string
	settingsFile     string
	serviceURL       string
	filters          framework.RegexFilters
	strictValidation bool
	debug            bool
	debugAll         bool
	logDir           string
}

func (c *commandParams) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&c.envFile, "env-file", "", "env file containing the backend URL (default from settings: /app/frontend/.env)")
	fs.StringVar(&c.settingsFile, "settings", "", "YAML file with runner settings")
	fs.StringVar(&c.serviceURL, "url", "", "backend base URL; overrides the env file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select probes to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select probes not to run")
	fs.BoolVar(&c.strictValidation, "strict-validation", false, "fail if the service accepts a status payload without client_name")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed probes")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all probes")
	fs.StringVar(&c.logDir, "log-dir", "", "directory for a structured JSON log of the run")
}

// rerunCommand returns a shell command line that repeats this run for the given probes
// only.
func (c *commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.settingsFile != "" {
		b.add("--settings", c.settingsFile)
	}
	if c.serviceURL != "" {
		b.add("--url", c.serviceURL)
	} else if c.envFile != "" {
		b.add("--env-file", c.envFile)
	}
	if c.strictValidation {
		b.add("--strict-validation")
	}
	for _, f := range failures {
		b.add("--run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	b.add("--debug")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
