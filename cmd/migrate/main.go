// Runner mínimo de migraciones SQL: aplica *_up.sql en orden lexicográfico,
// o *_down.sql en orden inverso con "down [n]".
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/dropDatabas3/taskjohn/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path al YAML de configuración (opcional)")
		dir        = flag.String("dir", "migrations/postgres", "Directorio de migraciones (*_up.sql / *_down.sql)")
	)
	_ = godotenv.Load()
	flag.Parse()

	action := "up"
	steps := 0
	args := flag.Args()
	if len(args) >= 1 && args[0] != "" {
		action = strings.ToLower(args[0])
	}
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			steps = n
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if cfg.Storage.DSN == "" {
		log.Fatal("storage.dsn requerido (env STORAGE_DSN)")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
	if err != nil {
		log.Fatalf("pgxpool: %v", err)
	}
	defer pool.Close()

	switch action {
	case "up":
		files, err := listSQL(*dir, "_up.sql")
		if err != nil {
			log.Fatalf("list up: %v", err)
		}
		if len(files) == 0 {
			log.Println("sin migraciones *_up.sql, nada que hacer")
			return
		}
		for _, f := range files {
			if err := execFile(ctx, pool, f); err != nil {
				log.Fatalf("up %s: %v", f, err)
			}
			log.Printf("applied %s", filepath.Base(f))
		}
	case "down":
		files, err := listSQL(*dir, "_down.sql")
		if err != nil {
			log.Fatalf("list down: %v", err)
		}
		// Orden inverso; por defecto un solo paso.
		if steps == 0 {
			steps = 1
		}
		for i := len(files) - 1; i >= 0 && steps > 0; i, steps = i-1, steps-1 {
			if err := execFile(ctx, pool, files[i]); err != nil {
				log.Fatalf("down %s: %v", files[i], err)
			}
			log.Printf("reverted %s", filepath.Base(files[i]))
		}
	default:
		log.Fatalf("acción desconocida %q (up|down)", action)
	}
}

func listSQL(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func execFile(ctx context.Context, pool *pgxpool.Pool, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, string(b)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}
