package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(dbtx db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: dbtx}
}

const commentsForItemSQL = `
SELECT c.id, c.text, u.name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = $1
ORDER BY c.created_at DESC
`

func (r *CommentReadStore) FindAllForItem(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.db.Query(ctx, commentsForItemSQL, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	var result []*queries.CommentView
	for rows.Next() {
		var view queries.CommentView
		if scanErr := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", scanErr)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	return result, nil
}

const commentsForItemsSQL = `
SELECT c.item_id, c.id, c.text, u.name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ANY($1)
ORDER BY c.created_at DESC
`

func (r *CommentReadStore) FindForItems(ctx context.Context, itemIDs []uuid.UUID) ([]*queries.ItemCommentRow, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, commentsForItemsSQL, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	var result []*queries.ItemCommentRow
	for rows.Next() {
		var row queries.ItemCommentRow
		if scanErr := rows.Scan(&row.ItemID, &row.Comment.ID, &row.Comment.Text, &row.Comment.AuthorName, &row.Comment.Created); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", scanErr)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	return result, nil
}
