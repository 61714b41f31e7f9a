package db

import (
	"context"
)

const getPage = `
SELECT body FROM pages WHERE url = ?
`

// GetPage returns the cached body for a url, or sql.ErrNoRows.
func (q *Queries) GetPage(ctx context.Context, url string) ([]byte, error) {
	row := q.db.QueryRowContext(ctx, getPage, url)
	var body []byte
	err := row.Scan(&body)
	return body, err
}

const putPage = `
INSERT INTO pages (url, fetched_at, body)
VALUES (?, ?, ?)
ON CONFLICT (url) DO UPDATE SET fetched_at = excluded.fetched_at, body = excluded.body
`

type PutPageParams struct {
	Url       string
	FetchedAt int64
	Body      []byte
}

func (q *Queries) PutPage(ctx context.Context, arg PutPageParams) error {
	_, err := q.db.ExecContext(ctx, putPage, arg.Url, arg.FetchedAt, arg.Body)
	return err
}

const deleteAllPages = `
DELETE FROM pages
`

func (q *Queries) DeleteAllPages(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllPages)
	return err
}
