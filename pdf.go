package main

import (
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/rs/zerolog/log"
)

func (b *botState) handlePDF(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	// only arg and required, always present
	md := strings.ReplaceAll(d.Options[0].String(), `\n`, "\n")

	log.Info().Str("user", e.User.Tag()).Int("length", len(md)).Msg("used pdf")

	b.respond(e, b.documentEmbed("Document", "", md))
}
