// guillocut computes the maximum total value obtainable by cutting a board
// into catalog pieces with guillotine cuts, and turns the optimal plan into
// PDF drawings, labels, spreadsheets and GCode.
//
// Build:
//
//	go build -o guillocut ./cmd/guillocut
//
// Example:
//
//	guillocut solve --width 5 --height 8 --piece 2x3:10 --piece 1x2:5 --piece 3x4:15
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
