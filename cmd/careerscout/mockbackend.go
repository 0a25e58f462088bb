package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/csheth/careerscout/internal/mockapi"
)

func newMockBackendCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:    "mock-backend",
		Short:  "Serve canned career outcomes responses for local development",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend := mockapi.New()
			backend.UseFixtures()
			server := &http.Server{
				Addr:              addr,
				Handler:           backend,
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				<-cmd.Context().Done()
				_ = server.Close()
			}()
			fmt.Fprintf(cmd.ErrOrStderr(), "mock backend listening on %s\n", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "listen address")
	return cmd
}
