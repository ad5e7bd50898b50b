package server

import (
	"github.com/raysh454/aria/internal/analyzer"
	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/suggest"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// AnalyzerConfig configures the default analyzer built when no Analyzer
	// is injected.
	AnalyzerConfig *analyzer.Config

	// SuggestConfig configures the suggestion gateway built when no
	// Suggester is injected.
	SuggestConfig suggest.Config

	// Analyzer overrides the default analyzer (tests inject fakes here).
	Analyzer interfaces.Analyzer

	// Suggester overrides the default suggestion gateway.
	Suggester interfaces.Suggester

	// Logger receives server logs. A stdout logger is used when nil.
	Logger interfaces.Logger
}

// DefaultConfig returns a Config with default analyzer and suggestion
// settings and the default listen address.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":8080",
		AnalyzerConfig: analyzer.DefaultConfig(),
		SuggestConfig:  suggest.DefaultConfig(),
	}
}
