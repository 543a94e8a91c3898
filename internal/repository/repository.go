package repository

import (
	"context"
	"errors"
	"fmt"
	"pinboard/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrMessageNotFound error = errors.New("message not found")

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Message{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.SaveToTable(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

func (r *BoardRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BoardRepository) CreateMessage(ctx context.Context, userName, contents string) (Message, error) {
	message := Message{
		UserName: userName,
		Contents: contents,
	}

	err := r.db.SaveToTable(ctx, &message)
	if err != nil {
		return Message{}, fmt.Errorf("save message: %w", err)
	}

	return message, nil
}

func (r *BoardRepository) ListMessages(ctx context.Context) ([]Message, error) {
	messages := []Message{}

	err := r.db.GetAll(ctx, &messages)
	if err != nil {
		return nil, fmt.Errorf("get all messages: %w", err)
	}

	return messages, nil
}

func (r *BoardRepository) SearchMessages(ctx context.Context, substring string) ([]Message, error) {
	messages := []Message{}

	err := r.db.SearchBy(ctx, "contents", substring, &messages)
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}

	return messages, nil
}

func (r *BoardRepository) GetMessage(ctx context.Context, id uint) (Message, error) {
	var message Message

	err := r.db.GetOneBy(ctx, "id", id, &message)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Message{}, ErrMessageNotFound
		}
		return Message{}, fmt.Errorf("get message by id: %w", err)
	}

	return message, nil
}

func (r *BoardRepository) UpdateMessage(ctx context.Context, id uint, contents string) error {
	err := r.db.UpdateBy(ctx, &Message{}, "id", id, map[string]any{"contents": contents})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("update message: %w", err)
	}

	return nil
}

func (r *BoardRepository) DeleteMessage(ctx context.Context, id uint) error {
	err := r.db.DeleteBy(ctx, &Message{}, "id", id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}
