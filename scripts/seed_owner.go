package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/syedmaroof/portfolio-api/adapters/persistence"
	"github.com/syedmaroof/portfolio-api/internal/domain/quote"
	"github.com/syedmaroof/portfolio-api/pkg/auth"
)

func main() {
	seedQuotes := flag.Bool("quotes", true, "insert the built-in hero quotes when the quotes table is empty")
	flag.Parse()

	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	ownerEmail := strings.ToLower(strings.TrimSpace(os.Getenv("OWNER_EMAIL")))
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	ownerName := os.Getenv("OWNER_NAME")
	if ownerEmail == "" || ownerPassword == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD are required")
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4, name = COALESCE(NULLIF($3, ''), users.name)
	`
	_, err = pool.Exec(ctx, query, uuid.New(), ownerEmail, ownerName, hash)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}
	fmt.Printf("added or updated owner '%s' successfully!\n", ownerEmail)

	if !*seedQuotes {
		return
	}

	quoteRepo := persistence.NewPostgresQuoteRepo(pool)
	existing, err := quoteRepo.List(ctx)
	if err != nil {
		log.Fatalf("cannot list quotes: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("quotes table already has %d rows, skipping\n", len(existing))
		return
	}
	for _, d := range quote.Defaults {
		q := d
		q.ID = uuid.New()
		q.CreatedAt = time.Now().UTC()
		if err := quoteRepo.Save(ctx, &q); err != nil {
			log.Fatalf("cannot add quote: %v", err)
		}
	}
	fmt.Printf("added %d default quotes\n", len(quote.Defaults))
}
