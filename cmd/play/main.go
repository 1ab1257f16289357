package main

import (
	"bufio"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/akoreshkov/minehint-server/internal/mines"
)

var log = logrus.New()

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetLevel(logrus.WarnLevel)
	if os.Getenv("DEVELOPMENT") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	// full debug trail goes to a rotated file, the terminal stays clean
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   "minehint-play.log",
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Warn("unable to set up file logging: ", err)
		return
	}
	log.AddHook(hook)
}

func main() {
	setupLogging()

	in := bufio.NewScanner(os.Stdin)

	params := promptParams(in)
	r := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	sess, err := mines.NewSession(params, r)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}
	log.WithFields(logrus.Fields{
		"seed":  params.Seed(),
		"mines": sess.Board.MineCount,
	}).Debug("game created")

	for !sess.Over() {
		switch promptAction(in) {
		case "play":
			printGrid(sess.Board)
			c := promptCoordinate(in, sess.Board)
			res, err := sess.Reveal(c)
			if err != nil {
				// promptCoordinate re-checks bounds and replays, so
				// a failure here means the game ended under us
				log.Error("reveal failed: ", err)
				continue
			}
			log.WithFields(logrus.Fields{
				"coordinate": c.String(),
				"hitMine":    res.HitMine,
				"status":     res.Status.String(),
			}).Debug("revealed")
			printGrid(sess.Board)
		case "hint":
			hint, err := sess.Hint()
			if err != nil {
				log.Error("hint failed: ", err)
				continue
			}
			printHint(hint)
		case "quit":
			if err := sess.Forfeit(); err != nil {
				log.Error("forfeit failed: ", err)
			}
		}
	}

	printGrid(sess.Board)
	printOutcome(sess.Status())
}
