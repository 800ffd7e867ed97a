package cli

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/web"
)

func NewServeCmd(deps *Dependencies) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transcript upload form",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			summarizer, err := newSummarizer(ctx, deps)
			if err != nil {
				return err
			}

			if addr != "" {
				deps.Config.Server.Addr = addr
			}
			if deps.Config.Logging.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			return web.New(summarizer, deps.Config.Server, deps.Logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
