package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floodrelief/relief-api/parser"
	"github.com/floodrelief/relief-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relief")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "FloodReliefDB")
}

// import-roster loads a shelter roster export into the evacuee collection
func main() {
	var (
		file   string
		dryRun bool
	)
	flag.StringVar(&file, "f", "roster.csv", "path of the roster export")
	flag.BoolVar(&dryRun, "dry-run", false, "parse only, do not write to the database")
	flag.Parse()

	data, err := ioutil.ReadFile(file)
	if err != nil {
		panic(err)
	}

	evacuees := parser.ParseRoster(string(data))
	fmt.Println("parsed evacuees:", len(evacuees))
	if dryRun || len(evacuees) == 0 {
		return
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		panic(err)
	}

	s := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer s.Close()

	if err := s.Ping(); err != nil {
		panic(err)
	}

	now := time.Now().UTC()
	for i := range evacuees {
		evacuees[i].PrepareImport(now)
	}

	result := s.BulkInsertEvacuees(ctx, evacuees)
	fmt.Printf("imported: %d, failed: %d\n", result.SuccessCount, result.ErrorCount)
	if result.FirstError != "" {
		fmt.Println("first error:", result.FirstError)
	}
}
