package ai

import (
	"context"
	"strings"
)

// MockCompleter is a canned backend for local development and tests.
// It emits a correctly delimited response so the whole pipeline can run
// without an API key.
type MockCompleter struct{}

// Complete implements Completer.
func (MockCompleter) Complete(_ context.Context, _, prompt string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Framework Used: Mock Framework\n\n")
	sb.WriteString("Most galleries get this wrong.\n\nHere is the uncomfortable part nobody says out loud.\n\nWhat would you do differently?\n")
	sb.WriteString("\n---SHORT_VERSION---\n\nMost galleries get this wrong. Here is why.\n")
	sb.WriteString("\n---TELEGRAM_VERSION---\n\n**Most galleries get this wrong.** The details matter.\n")
	sb.WriteString("\n---INSTAGRAM_VERSION---\n\nMost galleries get this wrong \U0001F3A8 link in bio\n")
	sb.WriteString("\n---YOUTUBE_VERSION---\n\n- Opening: the common mistake\n- Middle: why it happens\n- Close: what to do instead\n")
	sb.WriteString("\n---EMAIL_VERSION---\n\nSubject: A note on your collection\nGreeting: Dear Collector,\nBody:\nA short, direct update.\nSignature:\nThe Gallery Team\n")
	sb.WriteString("\n---HOOKS---\n\n1. Most galleries get this wrong.\n2. Nobody warns you about this.\n3. The data says otherwise.\n")
	return sb.String(), nil
}
