package core_test

import (
	"context"
	"errors"
	"pinboard/internal/core"
	"pinboard/internal/core/fake"
	"pinboard/internal/repository"
	tokenIssuer "pinboard/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Board", func() {
	var (
		fakeRepo    *fake.Repository
		fakeIssuer  *fake.SessionIssuer
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		board *core.Board

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeIssuer = new(fake.SessionIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		board = core.NewBoard(fakeLogger, fakeRepo, fakeIssuer)

		fakeErr = errors.New("fake error")
	})

	Describe("SignUp", func() {
		var (
			creds core.Credentials
			err   error
		)

		BeforeEach(func() {
			creds = core.Credentials{
				Username: "bob",
				Password: "pw123",
			}
		})

		JustBeforeEach(func() {
			err = board.SignUp(ctx, creds)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{ID: 7, Username: "bob"}, nil)
			})

			It("should store the user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, digest := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("bob"))
				Expect(digest).NotTo(Equal("pw123"))
				Expect(digest).To(HavePrefix("$2a$"))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUsernameTaken)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			creds          core.Credentials
			token          string
			err            error
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			creds = core.Credentials{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = board.Authenticate(ctx, creds)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     creds.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeIssuer.GenerateReturns(genToken)
				fakeIssuer.SignReturns("signed.token", nil)
			})

			It("should return a signed session token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(creds.Username))

				Expect(fakeIssuer.GenerateCallCount()).To(Equal(1))
				argGen := fakeIssuer.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   creds.Username,
					Subject:    "7",
					Expiration: 24 * time.Hour,
				}))

				Expect(fakeIssuer.SignCallCount()).To(Equal(1))
				argSign := fakeIssuer.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the generic authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthenticationFailed))
				Expect(fakeIssuer.GenerateCallCount()).To(Equal(0))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     creds.Username,
					PasswordHash: hashedPassword,
				}, nil)
				creds.Password = "wrongpass"
			})

			It("should return the same generic authentication error", func() {
				Expect(err).To(MatchError(core.ErrAuthenticationFailed))
				Expect(fakeIssuer.GenerateCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     creds.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeIssuer.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PostMessage", func() {
		var (
			record core.MessageRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = board.PostMessage(ctx, "alice", "hello")
		})

		When("the message is stored", func() {
			BeforeEach(func() {
				fakeRepo.CreateMessageReturns(repository.Message{ID: 1, UserName: "alice", Contents: "hello"}, nil)
			})

			It("should return the record with its assigned id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.MessageRecord{ID: 1, UserName: "alice", Contents: "hello"}))

				Expect(fakeRepo.CreateMessageCallCount()).To(Equal(1))
				_, userName, contents := fakeRepo.CreateMessageArgsForCall(0)
				Expect(userName).To(Equal("alice"))
				Expect(contents).To(Equal("hello"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateMessageReturns(repository.Message{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListMessages", func() {
		var (
			searchWord string
			records    []core.MessageRecord
			err        error
		)

		BeforeEach(func() {
			searchWord = ""
		})

		JustBeforeEach(func() {
			records, err = board.ListMessages(ctx, searchWord)
		})

		When("no search word is given", func() {
			BeforeEach(func() {
				fakeRepo.ListMessagesReturns([]repository.Message{
					{ID: 1, UserName: "alice", Contents: "hello"},
					{ID: 2, UserName: "bob", Contents: "goodbye"},
				}, nil)
			})

			It("should return every message in creation order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Contents).To(Equal("hello"))
				Expect(records[1].Contents).To(Equal("goodbye"))

				Expect(fakeRepo.ListMessagesCallCount()).To(Equal(1))
				Expect(fakeRepo.SearchMessagesCallCount()).To(Equal(0))
			})
		})

		When("a search word is given", func() {
			BeforeEach(func() {
				searchWord = "ell"
				fakeRepo.SearchMessagesReturns([]repository.Message{
					{ID: 1, UserName: "alice", Contents: "hello"},
				}, nil)
			})

			It("should return only the matching messages", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].Contents).To(Equal("hello"))

				Expect(fakeRepo.ListMessagesCallCount()).To(Equal(0))
				Expect(fakeRepo.SearchMessagesCallCount()).To(Equal(1))
				_, substr := fakeRepo.SearchMessagesArgsForCall(0)
				Expect(substr).To(Equal("ell"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListMessagesReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetMessage", func() {
		var (
			record core.MessageRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = board.GetMessage(ctx, 1)
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageReturns(repository.Message{ID: 1, UserName: "alice", Contents: "hello"}, nil)
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Contents).To(Equal("hello"))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageReturns(repository.Message{}, repository.ErrMessageNotFound)
			})

			It("should return ErrMessageNotFound", func() {
				Expect(err).To(MatchError(core.ErrMessageNotFound))
			})
		})
	})

	Describe("UpdateMessage", func() {
		var err error

		JustBeforeEach(func() {
			err = board.UpdateMessage(ctx, 1, "edited")
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeRepo.UpdateMessageReturns(nil)
			})

			It("should update the contents", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateMessageCallCount()).To(Equal(1))
				_, id, contents := fakeRepo.UpdateMessageArgsForCall(0)
				Expect(id).To(Equal(uint(1)))
				Expect(contents).To(Equal("edited"))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateMessageReturns(repository.ErrMessageNotFound)
			})

			It("should return ErrMessageNotFound", func() {
				Expect(err).To(MatchError(core.ErrMessageNotFound))
			})
		})
	})

	Describe("DeleteMessage", func() {
		var err error

		JustBeforeEach(func() {
			err = board.DeleteMessage(ctx, 1)
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMessageReturns(nil)
			})

			It("should delete the message", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteMessageCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteMessageArgsForCall(0)
				Expect(id).To(Equal(uint(1)))
			})
		})

		When("the message was already deleted", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMessageReturns(repository.ErrMessageNotFound)
			})

			It("should return ErrMessageNotFound", func() {
				Expect(err).To(MatchError(core.ErrMessageNotFound))
			})
		})
	})
})
