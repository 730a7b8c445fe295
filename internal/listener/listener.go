// Package listener provides a Postgres LISTEN/NOTIFY consumer for played
// matches. It holds a dedicated pgx connection (not from the pool)
// listening on the `match_played` channel.
//
// The matches_played trigger fires pg_notify whenever a match gets both
// scores, whichever path wrote them. The consumer marks the calendar entry
// as played and drops the league's cached views.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	channel          = "match_played"
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// MatchPlayedEvent is the JSON payload from pg_notify('match_played', ...).
type MatchPlayedEvent struct {
	MatchID   int   `json:"match_id"`
	LeagueID  int   `json:"league_id"`
	Jornada   int   `json:"jornada"`
	HomeGoals int   `json:"home_goals"`
	AwayGoals int   `json:"away_goals"`
	Timestamp int64 `json:"ts"`
}

// Store marks calendar entries as played.
type Store interface {
	MarkEntryPlayed(ctx context.Context, matchID int) (bool, error)
}

// Invalidator drops cached league views.
type Invalidator interface {
	InvalidateLeague(leagueID int) int
}

// Listener consumes match_played notifications.
type Listener struct {
	dbURL  string
	store  Store
	cache  Invalidator
	logger *slog.Logger
}

// New creates a Listener. dbURL is used for the dedicated connection.
func New(dbURL string, store Store, cache Invalidator, logger *slog.Logger) *Listener {
	return &Listener{dbURL: dbURL, store: store, cache: cache, logger: logger}
}

// Start opens a dedicated connection and listens on the match_played
// channel. It reconnects automatically on connection loss. Blocks until ctx
// is cancelled. Intended to be called with `go`.
func (l *Listener) Start(ctx context.Context) {
	backoff := reconnectBackoff

	for {
		err := l.listenLoop(ctx)
		if ctx.Err() != nil {
			l.logger.Info("Match listener stopped (context cancelled)")
			return
		}

		l.logger.Error("Match listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func (l *Listener) listenLoop(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}
	l.logger.Info("Match listener connected", "channel", channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		l.Handle(ctx, notification.Payload)
	}
}

// Handle processes one notification payload. Malformed payloads are logged
// and skipped.
func (l *Listener) Handle(ctx context.Context, payload string) {
	var event MatchPlayedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		l.logger.Warn("Failed to parse match_played event", "payload", payload, "error", err)
		return
	}
	if event.MatchID <= 0 {
		l.logger.Warn("match_played event without match id", "payload", payload)
		return
	}

	l.logger.Debug("Match played",
		"match_id", event.MatchID,
		"league_id", event.LeagueID,
		"jornada", event.Jornada,
		"score", fmt.Sprintf("%d-%d", event.HomeGoals, event.AwayGoals))

	if event.LeagueID > 0 {
		l.cache.InvalidateLeague(event.LeagueID)
	}
	changed, err := l.store.MarkEntryPlayed(ctx, event.MatchID)
	if err != nil {
		l.logger.Warn("Failed to mark calendar entry played", "match_id", event.MatchID, "error", err)
		return
	}
	if changed {
		l.logger.Info("Calendar entry marked played", "match_id", event.MatchID, "league_id", event.LeagueID)
	}
}
