// Command fakeservice serves an in-memory implementation of the status API, for trying
// the probe runner without the real backend.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/statusprobe/backend-contract-tests/fakeservice"
	"github.com/statusprobe/backend-contract-tests/logging"
)

func main() {
	var addr string
	var opts fakeservice.Options

	cmd := &cobra.Command{
		Use:          "fakeservice",
		Short:        "Serve an in-memory status API on /api",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewConsoleLogger()
			defer func() { _ = logger.Sync() }()

			logger.Info("api_listen", zap.String("addr", addr), zap.Any("options", opts))
			if err := http.ListenAndServe(addr, fakeservice.New(opts, logger).Router()); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8001", "address to listen on")
	cmd.Flags().StringVar(&opts.Greeting, "greeting", "", "override the root message")
	cmd.Flags().BoolVar(&opts.StrictValidation, "strict-validation", false, "reject status payloads without client_name")
	cmd.Flags().BoolVar(&opts.DisableCORS, "disable-cors", false, "serve responses without CORS headers")
	cmd.Flags().BoolVar(&opts.DropWrites, "drop-writes", false, "accept status checks without storing them")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
