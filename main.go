package main

import (
	"vendorhub/core/logger"
	"vendorhub/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
