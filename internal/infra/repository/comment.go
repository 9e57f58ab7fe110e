package repository

import (
	"context"

	"gearshare/internal/domain/comment"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

const createCommentSQL = `
INSERT INTO comments (id, text, item_id, author_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createCommentSQL,
		c.ID(), c.Text(), c.ItemID(), c.AuthorID(), c.Created(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
