package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

const migrationsDir = "db/migrations"

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Scaffolds an empty up/down migration pair with a timestamp version, e.g.
// go run ./cmd/migrate-create add_card_indexes
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: migrate-create <name>")
	}
	name := os.Args[1]
	if !validName.MatchString(name) {
		log.Fatalf("migration name %q must match %s", name, validName)
	}

	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", migrationsDir, err)
	}

	base := time.Now().UTC().Format("20060102150405") + "_" + name
	for _, suffix := range []string{".up.sql", ".down.sql"} {
		path := filepath.Join(migrationsDir, base+suffix)
		if err := createEmpty(path); err != nil {
			log.Fatalf("scaffold migration: %v", err)
		}
		fmt.Println(path)
	}
}

func createEmpty(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
