package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sj26/syllable/src/dict"
	"github.com/sj26/syllable/src/haikubot"
	"github.com/sj26/syllable/src/syllable"
)

func main() {
	conf, dbPath, corpusPath := readConfig()

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("could not open database %s: %v", dbPath, err)
	}
	defer db.Close()
	if err := dict.BootstrapDB(db); err != nil {
		log.Fatalf("could not bootstrap database: %v", err)
	}

	corpus, err := os.Open(corpusPath)
	if err != nil {
		log.Fatalf("could not open corpus %s: %v", corpusPath, err)
	}
	dictionary := dict.New(db)
	err = dictionary.Load(context.Background(), corpus)
	corpus.Close()
	if err != nil {
		log.Fatalf("could not load dictionary: %v", err)
	}
	log.Printf("dictionary ready with %d words", dictionary.Len())

	bot := haikubot.NewBot(conf, syllable.NewCounter(dictionary))
	if err := bot.Open(); err != nil {
		log.Fatalf("fail error opening bot: %v", err)
	}

	log.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc

	// Cleanly close down the Discord session.
	if err := bot.Close(); err != nil {
		log.Println("error closing session,", err)
	}
}

func readConfig() (haikubot.Config, string, string) {
	viper.SetDefault("reactHaiku", true)
	viper.SetDefault("reactNonHaiku", false)
	viper.SetDefault("explainNonHaiku", true)
	viper.SetDefault("positiveReacts", []string{"💯", "🍙", "🍵", "🍶", "🍜"})
	viper.SetDefault("negativeReacts", []string{"🚫", "⛔"})
	viper.SetDefault("dbPath", "./syllableDB.sqlite3")
	viper.SetDefault("corpusPath", "./data/cmudict-0.7b.txt")
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("SYLLABLE_BOT")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/syllablebot")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.Println("no config file found, using defaults,", err)
	}

	return haikubot.Config{
		Token:           viper.GetString("token"),
		ReactToHaiku:    viper.GetBool("reactHaiku"),
		ReactToNonHaiku: viper.GetBool("reactNonHaiku"),
		ExplainNonHaiku: viper.GetBool("explainNonHaiku"),
		PositiveReacts:  viper.GetStringSlice("positiveReacts"),
		NegativeReacts:  viper.GetStringSlice("negativeReacts"),
		Debug:           viper.GetBool("debug"),
	}, viper.GetString("dbPath"), viper.GetString("corpusPath")
}
