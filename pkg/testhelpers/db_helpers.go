package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// CreateTestApplication inserts a minimal valid application row and returns its ID.
func CreateTestApplication(t *testing.T, db *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	email := fmt.Sprintf("founder-%d@example.com", suffix)
	venture := fmt.Sprintf("test-venture-%d", suffix)

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO applications (tracking_id, founder_name, email, venture_name, industry, pitch_deck_key, gdpr_consent, status)
         VALUES ($1, $2, $3, $4, 'Technology', $5, true, 'Submitted') RETURNING id`,
		uuid.NewString(), "Test Founder", email, venture, uuid.NewString()).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestContactMessage inserts an unresolved contact message and returns its ID.
func CreateTestContactMessage(t *testing.T, db *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	email := fmt.Sprintf("contact-%d@example.com", suffix)

	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO contact_messages (name, email, message) VALUES ($1, $2, $3) RETURNING id",
		fmt.Sprintf("test-contact-%d", suffix), email, "hello").Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestNetworkSignup inserts a pending mentor signup and returns its ID.
func CreateTestNetworkSignup(t *testing.T, db *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	email := fmt.Sprintf("mentor-%d@example.com", suffix)

	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO network_signups (name, email, role, status) VALUES ($1, $2, 'Mentor', 'Pending Review') RETURNING id",
		fmt.Sprintf("test-mentor-%d", suffix), email).Scan(&id)
	require.NoError(t, err)
	return id
}
