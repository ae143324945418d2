// Command promote grants the admin role to a user by email address and
// approves the account if it is still pending. It is used to bootstrap
// the first admin, since admin endpoints require an existing admin.
//
// Usage:
//
//	promote --email=user@example.com
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const promoteQuery = `
UPDATE users
SET role = 'admin', status = 'approved', updated_at = now()
WHERE email = $1 AND role != 'admin'`

func main() {
	email := flag.String("email", "", "email of the user to promote")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx, promoteQuery, *email)
	if err != nil {
		log.Fatalf("promote user: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No user found with email %q, or already admin.\n", *email)
		os.Exit(1)
	}

	fmt.Printf("User %q is now an approved admin.\n", *email)
}
