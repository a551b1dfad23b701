package main

import (
	"flag"

	"beacon-guard/backend/global"
	"beacon-guard/backend/initialize"
	"beacon-guard/backend/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to panel config")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("panel bootstrap failed")
	}
	defer app.Catalog.Close()

	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server failed to start")
	}
	global.Logger.Info().
		Str("host", app.Cfg.HTTP.Host).
		Int("port", app.Cfg.HTTP.Port).
		Msg("panel listening")

	select {}
}
