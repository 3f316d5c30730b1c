package main

import (
	"scheduler-api/core/logger"
	"scheduler-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Fatal("run server error", err)
	}
}
