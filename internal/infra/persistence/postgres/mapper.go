package postgres

import (
	"blog/internal/domain/entity"
	"blog/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		OwnerID:   data.UserID,
		Owner:     toUserDomain(data.User),
		Comments:  toCommentsDomain(data.Comments),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPostsDomain(data []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for _, p := range data {
		posts = append(posts, toPostDomain(p))
	}

	return posts
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:      data.ID,
		Title:   data.Title,
		Content: data.Content,
		UserID:  data.OwnerID,
	}
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		PostID:    data.PostID,
		AuthorID:  data.UserID,
		Author:    toUserDomain(data.User),
		CreatedAt: data.CreatedAt,
	}
}

func toCommentsDomain(data []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(data))
	for _, c := range data {
		comments = append(comments, toCommentDomain(c))
	}

	return comments
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:      data.ID,
		Content: data.Content,
		PostID:  data.PostID,
		UserID:  data.AuthorID,
	}
}
