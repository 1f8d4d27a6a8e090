/* main.go
 * The "main" method for running the bot. For details about the bot see `readme.md`
 * Usage: go run . -test="false" -profile="<profile>" -templates="<path>"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"log"

	"matchpost-bot/bot"
	"matchpost-bot/config"
	"matchpost-bot/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	//Flags
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	profilePtr := flag.String("profile", cfg.Templates.DefaultProfile, "Template profile used when a command doesn't name one")
	templatesPtr := flag.String("templates", cfg.Templates.Path, "Path of the template profiles yaml file")
	flag.Parse()

	test, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	cfg.Templates.DefaultProfile = *profilePtr
	cfg.Templates.Path = *templatesPtr

	if err := cfg.Validate(test); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	apiPtr, s, err := setupAPI(cfg)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := s.GetClient().Disconnect(context.TODO()); err != nil {
			log.Println("failed to disconnect store:", err)
		}
	}()

	if cfg.Web.Enabled {
		go func() {
			if err := web.Start(web.Config{Addr: cfg.Web.Addr, API: apiPtr}); err != nil {
				log.Println("HTTP server stopped:", err)
			}
		}()
	}

	matchBot, err := bot.NewBot(cfg.DiscordToken(test), apiPtr, cfg.Discord.MessageRate)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}
	if err := matchBot.Run(); err != nil {
		log.Printf("bot stopped: %v", err)
	}
}
