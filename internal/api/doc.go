// Package api contains the HTTP handlers for the card, lyric
// generation, speech synthesis and audio proxy endpoints, plus the
// mapping from internal errors to HTTP status codes and safe client
// messages.
package api
