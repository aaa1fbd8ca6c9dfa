package usage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Touch(ctx context.Context, email, itemType, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO usage_stats (id, user_email, item_type, item_value, usage_count, first_used, last_used)
		VALUES ($1,$2,$3,$4,1,NOW(),NOW())
		ON CONFLICT (user_email, item_type, item_value)
		DO UPDATE SET usage_count = usage_stats.usage_count + 1, last_used = NOW()`,
		uuid.New(), email, itemType, value)
	return err
}

func (r *repoPG) FrequentValues(ctx context.Context, email, itemType string, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT item_value FROM usage_stats
		WHERE user_email = $1 AND item_type = $2
		ORDER BY usage_count DESC, last_used DESC
		LIMIT $3`, email, itemType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
