// cestactl reúne as tarefas de manutenção que rodam fora do servidor HTTP.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := zerolog.New(os.Stderr)
		logger.Error().Err(err).Msg("cestactl")
		os.Exit(1)
	}
}
