package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "config file, defaults to ./config.json when present")
	stylePath := flag.String("style", "", "style file, overrides the configured style")
	output := flag.String("o", "", "write the document to this file instead of stdout")
	indent := flag.Bool("indent", false, "indent the document JSON")
	dump := flag.Bool("pp", false, "pretty print the converted content to stderr")
	bot := flag.Bool("bot", false, "run the discord bot instead of converting a file")
	flag.Parse()

	cfg, err := config(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if *stylePath != "" {
		cfg.Style = *stylePath
	}

	conv, err := newConverter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create converter")
	}

	if *bot {
		if err := runBot(cfg, conv); err != nil {
			log.Fatal().Err(err).Msg("bot stopped")
		}
		return
	}

	err = convertFile(conv, convertOptions{
		input:  flag.Arg(0),
		output: *output,
		indent: *indent,
		dump:   *dump,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
}
