// HeightLab CLI - adult height predictions from a child's measurements.
//
// Usage:
//
//	heightlab predict --height 127 --age-years 8 --gender male --mother 165 --father 178
//	heightlab convert height --value 180 --from cm --to inches
//	heightlab convert age --years 2 --months 6 --to weeks
//	heightlab serve --port 8080
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/TheMirberrys/height-lab-app/api"
	"github.com/TheMirberrys/height-lab-app/internal/prediction"
	"github.com/TheMirberrys/height-lab-app/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes. Errors without an explicit code exit with 1.
const (
	ExitSuccess    = 0
	ExitValidation = 2
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		platform.LogFatal(log.Logger, "heightlab failed", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "heightlab",
		Usage:   "Predict a child's adult height from current measurements and parental heights",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"HEIGHTLAB_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "Write JSON log lines to stdout instead of console output",
				EnvVars: []string{"HEIGHTLAB_LOG_JSON"},
			},
		},

		Before: func(c *cli.Context) error {
			platform.InitLogger(c.String("log-level"), !c.Bool("log-json"))
			return nil
		},

		Commands: []*cli.Command{
			predictCommand(),
			convertCommand(),
			serveCommand(),
		},
	}
}

// =============================================================================
// SERVE COMMAND (API SERVER)
// =============================================================================

func serveCommand() *cli.Command {
	defaults := api.DefaultConfig()

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HeightLab API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   defaults.Port,
				Usage:   "API server port",
				EnvVars: []string{"HEIGHTLAB_PORT"},
			},
			&cli.StringFlag{
				Name:    "cors-origins",
				Value:   "*",
				Usage:   "Comma-separated list of allowed CORS origins",
				EnvVars: []string{"HEIGHTLAB_CORS_ORIGINS"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Require this value in the X-API-Key header",
				EnvVars: []string{"HEIGHTLAB_API_KEY"},
			},
			&cli.Float64Flag{
				Name:  "outlier-threshold",
				Value: prediction.DefaultOutlierThreshold,
				Usage: "Inches a method may deviate from the mean before it is excluded",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	corsOrigins := strings.Split(c.String("cors-origins"), ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	cfg := api.DefaultConfig()
	cfg.Port = c.Int("port")
	cfg.CORSOrigins = corsOrigins
	cfg.APIKey = c.String("api-key")

	api.Version = version
	engine := prediction.NewEngine().WithOutlierThreshold(c.Float64("outlier-threshold"))
	server := api.NewServer(engine, cfg, log.Logger)

	return server.StartWithGracefulShutdown()
}
