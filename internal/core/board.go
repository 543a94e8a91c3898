package core

import (
	"context"
	"errors"
	"fmt"
	"pinboard/internal/repository"
	tokenIssuer "pinboard/pkg/jwt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrAuthenticationFailed error = errors.New("incorrect username or password")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrMessageNotFound error = errors.New("message not found")

const sessionDuration = 24 * time.Hour

// dummyDigest is compared against when the username lookup misses so the
// unknown-user path costs the same as a wrong-password one.
const dummyDigest = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// Board is the message-board service: account signup, credential
// verification with session-token issuing, and message CRUD.
type Board struct {
	logs          *zap.SugaredLogger
	repo          Repository
	sessionIssuer SessionIssuer
}

// NewBoard is a constructor function for the Board type.
func NewBoard(logger *zap.SugaredLogger, repo Repository, sessionIssuer SessionIssuer) *Board {
	return &Board{
		logs:          logger,
		repo:          repo,
		sessionIssuer: sessionIssuer,
	}
}

// SignUp hashes the password and creates the user record. Returns
// ErrUsernameTaken when the username is already registered.
func (b *Board) SignUp(ctx context.Context, creds Credentials) error {
	digest, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := b.repo.CreateUser(ctx, creds.Username, string(digest))
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Authenticate checks the provided credentials against the store and, when
// they match, returns a signed session token. Unknown usernames and wrong
// passwords both return ErrAuthenticationFailed.
func (b *Board) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	user, err := b.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// burn a comparison so this path is not observably faster
			_ = bcrypt.CompareHashAndPassword([]byte(dummyDigest), []byte(creds.Password))
			return "", ErrAuthenticationFailed
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return "", ErrAuthenticationFailed
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: sessionDuration,
	}
	token := b.sessionIssuer.Generate(tokenInfo)
	signed, err := b.sessionIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// PostMessage appends a message. The display name is a free string and is
// not checked against any registered user.
func (b *Board) PostMessage(ctx context.Context, userName, contents string) (MessageRecord, error) {
	message, err := b.repo.CreateMessage(ctx, userName, contents)
	if err != nil {
		return MessageRecord{}, fmt.Errorf("create message: %w", err)
	}

	b.logs.Infow("message posted", "messageId", message.ID, "userName", message.UserName)
	return b.toRecord(message), nil
}

// ListMessages returns messages in creation order. A non-empty searchWord
// narrows the result to messages whose contents contain it.
func (b *Board) ListMessages(ctx context.Context, searchWord string) ([]MessageRecord, error) {
	var messages []repository.Message
	var err error

	if searchWord == "" {
		messages, err = b.repo.ListMessages(ctx)
	} else {
		messages, err = b.repo.SearchMessages(ctx, searchWord)
	}
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	records := make([]MessageRecord, len(messages))
	for i, message := range messages {
		records[i] = b.toRecord(message)
	}
	return records, nil
}

func (b *Board) GetMessage(ctx context.Context, id uint) (MessageRecord, error) {
	message, err := b.repo.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return MessageRecord{}, ErrMessageNotFound
		}
		return MessageRecord{}, fmt.Errorf("get message: %w", err)
	}

	return b.toRecord(message), nil
}

// UpdateMessage replaces the contents of an existing message in place. The
// identifier and display name are unchanged.
func (b *Board) UpdateMessage(ctx context.Context, id uint, contents string) error {
	err := b.repo.UpdateMessage(ctx, id, contents)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("update message: %w", err)
	}

	b.logs.Infow("message updated", "messageId", id)
	return nil
}

func (b *Board) DeleteMessage(ctx context.Context, id uint) error {
	err := b.repo.DeleteMessage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}

	b.logs.Infow("message deleted", "messageId", id)
	return nil
}

func (b *Board) toRecord(message repository.Message) MessageRecord {
	return MessageRecord{
		ID:       message.ID,
		UserName: message.UserName,
		Contents: message.Contents,
	}
}
