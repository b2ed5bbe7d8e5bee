package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/flusio/soutenir/internal/config"
	"github.com/flusio/soutenir/internal/migration"
	"github.com/flusio/soutenir/internal/server"
	"github.com/flusio/soutenir/pkg/db"
	"github.com/flusio/soutenir/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
