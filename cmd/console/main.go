package main

import (
	"flag"
	"os"

	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/consolechess/internal/console"
	"github.com/benbeisheim/consolechess/internal/model"
)

func main() {
	fen := flag.String("fen", "", "start from this FEN instead of the standard position")
	color := flag.Bool("color", true, "highlight white pieces with ANSI colors")
	flag.Parse()

	log.Info("Starting...")

	game := model.NewGame()
	if *fen != "" {
		var err error
		game, err = model.NewGameFromFEN(*fen)
		if err != nil {
			log.Fatalf("load position: %v", err)
		}
	}

	display := console.NewDisplay(game, os.Stdout, *color)
	if err := display.Loop(os.Stdin); err != nil {
		log.Fatalf("read input: %v", err)
	}
}
