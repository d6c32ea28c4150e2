// Package main is the entry point for Struggle of a Lowly Mage.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_LOWLYMAGE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		logrus.WithError(err).Debug(".env file not loaded")
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
