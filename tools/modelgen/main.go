package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// runTables are the tables owned by the courier run store.
var runTables = []string{"grid_maps", "runs", "run_events"}

func main() {
	var dsn, driver, out string
	flag.StringVar(&dsn, "dsn", os.Getenv("COURIER_DB_DSN"), "database dsn")
	flag.StringVar(&driver, "driver", envOr("COURIER_DB_DRIVER", "postgres"), "postgres or mysql")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or COURIER_DB_DSN")
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		log.Fatalf("unsupported driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("open %s: %v", driver, err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	for _, table := range runTables {
		g.GenerateModel(table)
	}
	g.Execute()

	fmt.Printf("generated %d gorm models at %s\n", len(runTables), out)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
