package utils

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Subcommand returns the invoked subcommand group, subcommand and options.
// Group is empty for a subcommand declared directly on the command.
func Subcommand(i *discordgo.InteractionCreate) (group, name string, opts Options) {
	options := i.ApplicationCommandData().Options
	for len(options) > 0 {
		opt := options[0]
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			group = opt.Name
			options = opt.Options
		case discordgo.ApplicationCommandOptionSubCommand:
			return group, opt.Name, NewOptions(opt.Options)
		default:
			return group, "", NewOptions(options)
		}
	}
	return group, "", Options{}
}

// Options indexes command options by name
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// NewOptions indexes opts by name
func NewOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) Options {
	out := make(Options, len(opts))
	for _, opt := range opts {
		out[opt.Name] = opt
	}
	return out
}

// Has reports whether the user supplied the option
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns a string option, or "" when absent
func (o Options) String(name string) string {
	opt, ok := o[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

// Int returns an integer option, or 0 when absent
func (o Options) Int(name string) int {
	opt, ok := o[name]
	if !ok {
		return 0
	}
	return int(opt.IntValue())
}

// Bool returns a boolean option, or false when absent
func (o Options) Bool(name string) bool {
	opt, ok := o[name]
	if !ok {
		return false
	}
	return opt.BoolValue()
}

// List splits a comma or space separated string option, dropping blanks
func (o Options) List(name string) []string {
	return strings.FieldsFunc(o.String(name), func(r rune) bool {
		return r == ',' || r == ' '
	})
}
