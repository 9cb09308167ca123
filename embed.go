package main

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

const accentColor = 0x007D9C

// fence is the markup wrapped around the document in an embed description.
const fence = len("```json\n\n```\n*Document truncated*")

func (b *botState) documentEmbed(title, url, md string) discord.Embed {
	p, err := renderDocument(b.conv, md, b.cfg.Limit-fence)
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("could not convert markdown")
		return failEmbed("Error", "Could not convert the markdown.")
	}
	b.conversions.Add(1)

	description := "```json\n" + p.body + "\n```"
	if p.more {
		description += "\n*Document truncated*"
	}

	return discord.Embed{
		Title:       title,
		URL:         url,
		Description: description,
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("%s, %d top level nodes", humanize.Bytes(uint64(p.size)), p.nodes),
		},
	}
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}
