package discord

import "github.com/bwmarrin/discordgo"

func option(ic *discordgo.InteractionCreate, name string) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return nil, false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	o, ok := option(ic, name)
	if !ok || o.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	return o.StringValue(), true
}

func optInt64(ic *discordgo.InteractionCreate, name string) (int64, bool) {
	o, ok := option(ic, name)
	if !ok || o.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	return o.IntValue(), true
}

// el valor de una opción de canal es el ID como string
func optChannelID(ic *discordgo.InteractionCreate, name string) (string, bool) {
	o, ok := option(ic, name)
	if !ok || o.Type != discordgo.ApplicationCommandOptionChannel {
		return "", false
	}
	id, _ := o.Value.(string)
	return id, id != ""
}
