package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"sketchboard/internal/tools"
	"sketchboard/internal/ui"
)

func main() {
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	session := tools.NewSession(tools.DefaultConfig())
	log.WithFields(log.Fields{
		"canvasWidth":  session.CanvasWidth,
		"canvasHeight": session.CanvasHeight,
	}).Info("starting session")

	ui.RunApp(session)
}
