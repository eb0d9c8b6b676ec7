// Command seed loads default settings, services and FAQs from a YAML file.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/pkg/container"
	"lawfirm-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	path := flag.String("file", "seeds/settings.yaml", "seed file")
	flag.Parse()

	file, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("[SEED] Failed to open seed file")
	}
	seed, err := Decode(file)
	file.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("[SEED] Invalid seed file")
	}

	ctx := context.Background()
	c, err := container.NewContainer(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("[CONTAINER] Failed to initialize")
	}
	defer c.Cleanup()

	seeder := &Seeder{
		Settings: c.SettingService,
		Services: c.LegalService,
		Faqs:     c.FaqService,
	}
	res, err := seeder.Run(ctx, seed)
	if err != nil {
		log.Error().Err(err).Msg("[SEED] Failed")
		return
	}

	log.Info().
		Int("settings", res.Settings).
		Int("services", res.Services).
		Int("faqs", res.Faqs).
		Msg("[SEED] Done")
}
