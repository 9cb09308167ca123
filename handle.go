package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/hhhapz/doc"
	"github.com/hhhapz/doc/godocs"
	"github.com/hhhapz/docmake/pdfmake"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type botState struct {
	cfg      configuration
	appID    discord.AppID
	conv     pdfmake.Converter
	searcher *doc.CachedSearcher
	state    *state.State

	conversions atomic.Uint64
}

func runBot(cfg configuration, conv pdfmake.Converter) error {
	if cfg.Token == "" {
		return errors.New("no token provided")
	}

	s, err := state.New("Bot " + cfg.Token)
	if err != nil {
		return errors.Wrap(err, "could not open session")
	}

	b := botState{
		cfg:      cfg,
		conv:     conv,
		searcher: doc.WithCache(doc.New(http.DefaultClient, godocs.Parser)),
		state:    s,
	}
	s.AddHandler(b.OnCommand)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Open(ctx); err != nil {
		return errors.Wrap(err, "failed to open")
	}
	defer s.Close()

	log.Info().Msg("gateway connection established")
	me, err := s.Me()
	if err != nil {
		return errors.Wrap(err, "could not get me")
	}
	b.appID = discord.AppID(me.ID)

	log.Info().Str("user", me.Tag()).Msg("logged in")

	if err := loadCommands(s, b.appID); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")
	return nil
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	data, ok := e.Data.(*discord.CommandInteractionData)
	if !ok {
		return
	}

	switch data.Name {
	case "pdf":
		b.handlePDF(e, data)
	case "docs":
		b.handleDocs(e, data)
	case "info":
		b.handleInfo(e, data)
	}
}

// respond sends an ephemeral embed as the interaction response.
func (b *botState) respond(e *gateway.InteractionCreateEvent, embed discord.Embed) {
	err := b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("could not send interaction response")
	}
}

func loadCommands(s *state.State, appID discord.AppID) error {
	registered, err := s.Commands(appID)
	if err != nil {
		return errors.Wrap(err, "could not list commands")
	}

	registeredMap := map[string]bool{}
	for _, c := range registered {
		registeredMap[c.Name] = true
		log.Debug().Str("command", c.Name).Msg("registered command")
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		if _, err := s.CreateCommand(appID, c); err != nil {
			return errors.Wrap(err, "could not register "+c.Name)
		}
		log.Info().Str("command", c.Name).Msg("created command")
	}

	return nil
}

var commands = []api.CreateCommandData{
	{
		Name:        "pdf",
		Description: "Convert markdown into a pdfmake document definition",
		Options: []discord.CommandOption{
			{
				Name:        "markdown",
				Description: `Markdown text, use \n for line breaks`,
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "docs",
		Description: "Convert Go package docs into a pdfmake document definition",
		Options: []discord.CommandOption{
			{
				Name:        "query",
				Description: "Search query (i.e strings.Split)",
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
}
