package pool

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource samples keywords from a read-only question bank. Rows are
// drawn at random on every call so consecutive rounds see fresh material.
type PostgresSource struct {
	db     *pgxpool.Pool
	sample int
}

func NewPostgresSource(dsn string, sample int) (*PostgresSource, error) {
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	if sample <= 0 {
		sample = 80
	}
	return &PostgresSource{db: db, sample: sample}, nil
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.Ping(ctx)
}

func (s *PostgresSource) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *PostgresSource) Topics(ctx context.Context) ([]Topic, error) {
	rows, err := s.db.Query(ctx,
		`SELECT topic, keyword FROM keywords ORDER BY random() LIMIT $1`, s.sample)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTopic := map[string][]string{}
	order := make([]string, 0, 8)
	for rows.Next() {
		var topic, keyword string
		if err := rows.Scan(&topic, &keyword); err != nil {
			return nil, err
		}
		if _, seen := byTopic[topic]; !seen {
			order = append(order, topic)
		}
		byTopic[topic] = append(byTopic[topic], keyword)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	topics := make([]Topic, 0, len(order))
	for _, name := range order {
		topics = append(topics, Topic{Name: name, Keywords: byTopic[name]})
	}
	return topics, nil
}
