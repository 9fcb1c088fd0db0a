package main

import (
	_ "embed"
	"flag"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Help is the topic requested with slidefix's -h/-help flag.
//
//	slidefix -h            # default
//	slidefix -help=keywords
//	slidefix -h keywords   # see Resolve
type Help string

// Help topics referenced by the program.
const (
	NoHelp        Help = ""
	DefaultHelp   Help = "default"
	UsageHelp     Help = "usage"
	HighlightHelp Help = "highlight"
	KeywordsHelp  Help = "keywords"
	ConfigHelp    Help = "config"
)

var (
	//go:embed help/default.txt
	_defaultHelp string

	//go:embed help/highlight.txt
	_highlightHelp string

	//go:embed help/keywords.txt
	_keywordsHelp string

	//go:embed help/config.txt
	_configHelp string

	_helpTopics = map[Help]string{
		ConfigHelp:    _configHelp,
		DefaultHelp:   _defaultHelp,
		HighlightHelp: _highlightHelp,
		KeywordsHelp:  _keywordsHelp,
		UsageHelp:     _defaultHelp[:strings.IndexByte(_defaultHelp, '\n')+1],
	}

	// Alternative spellings accepted for topics.
	_helpAliases = map[string]Help{
		"true":    DefaultHelp,
		"conf":    ConfigHelp,
		"env":     ConfigHelp,
		"keyword": KeywordsHelp,
		"kw":      KeywordsHelp,
		"style":   HighlightHelp,
		"css":     HighlightHelp,
	}
)

// HelpTopics lists the known help topics in sorted order.
func HelpTopics() []string {
	topics := make([]string, 0, len(_helpTopics))
	for h := range _helpTopics {
		topics = append(topics, string(h))
	}
	slices.Sort(topics)
	return topics
}

// Known reports whether h names a help topic.
// NoHelp is not a topic.
func (h Help) Known() bool {
	_, ok := _helpTopics[h]
	return ok
}

// Write writes the help on this topic to the writer.
// If this topic is not known, an error listing the known topics is returned.
func (h Help) Write(w io.Writer) error {
	if h == NoHelp {
		return nil
	}

	doc, ok := _helpTopics[h]
	if !ok {
		return errtrace.Errorf("unknown help topic %q: valid values are %q", string(h), HelpTopics())
	}
	_, err := io.WriteString(w, doc)
	return errtrace.Wrap(err)
}

// Resolve handles "-h topic" where the user meant "-h=topic".
// If only the default topic was requested
// and the first argument names a topic,
// h switches to that topic and the argument is consumed.
//
// Returns the remaining arguments.
func (h *Help) Resolve(args []string) []string {
	if *h != DefaultHelp || len(args) == 0 {
		return args
	}

	var topic Help
	if err := topic.Set(args[0]); err != nil || !topic.Known() {
		return args
	}
	*h = topic
	return args[1:]
}

var _ flag.Getter = (*Help)(nil)

// Get returns the value of the Help.
// This is to comply with the [flag.Getter] interface.
func (h *Help) Get() any {
	return *h
}

// IsBoolFlag marks this as a boolean flag
// which allows it to be used without an argument.
func (*Help) IsBoolFlag() bool {
	return true
}

// String returns the name of this topic.
func (h Help) String() string {
	return string(h)
}

// Set receives a command line value.
// Topic names are case-insensitive and may be given by alias.
func (h *Help) Set(s string) error {
	s = strings.TrimSpace(strings.ToLower(s))
	if alias, ok := _helpAliases[s]; ok {
		*h = alias
		return nil
	}
	*h = Help(s)
	return nil
}
