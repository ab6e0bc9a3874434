package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swatchbook/internal/server"
)

// serveCommand creates the serve command running the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long: `Start an HTTP server exposing the catalog as JSON and rendered
swatches. The server shares the render cache with the CLI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(runner, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			printInfo("Serving catalog on %s", StyleLink.Render("http://"+addr))
			printDetail("GET /api/colormaps, /colormaps/{name}.png, /sheet.png")

			// Shut down cleanly when the command context is cancelled.
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				c.Logger.Info("Server stopped")
				return cmd.Context().Err()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8321", "listen address")

	return cmd
}
