package repository_test

import (
	"context"
	"errors"
	"pinboard/internal/db"
	"pinboard/internal/repository"
	"pinboard/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BoardRepository", func() {
	var (
		repo        *repository.BoardRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewBoardRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user and message tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Message{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "bob", "digest")
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableStub = func(ctx context.Context, records any) error {
					u := records.(*repository.User)
					u.ID = 7
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal("bob"))
				Expect(user.PasswordHash).To(Equal("digest"))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, records := fakeStorage.SaveToTableArgsForCall(0)
				Expect(records).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(db.ErrDuplicate)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "bob")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					u := entity.(*repository.User)
					*u = repository.User{ID: 7, Username: "bob", PasswordHash: "digest"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("bob"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, entity := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("bob"))
				Expect(entity).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateMessage", func() {
		var (
			message repository.Message
			err     error
		)

		JustBeforeEach(func() {
			message, err = repo.CreateMessage(ctx, "alice", "hello")
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableStub = func(ctx context.Context, records any) error {
					m := records.(*repository.Message)
					m.ID = 1
					return nil
				}
			})

			It("should return the stored message with its id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(message.ID).To(Equal(uint(1)))
				Expect(message.UserName).To(Equal("alice"))
				Expect(message.Contents).To(Equal("hello"))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListMessages", func() {
		var (
			messages []repository.Message
			err      error
		)

		JustBeforeEach(func() {
			messages, err = repo.ListMessages(ctx)
		})

		When("messages exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(ctx context.Context, entities any) error {
					msgs := entities.(*[]repository.Message)
					*msgs = []repository.Message{
						{ID: 1, UserName: "alice", Contents: "hello"},
						{ID: 2, UserName: "bob", Contents: "goodbye"},
					}
					return nil
				}
			})

			It("should return all messages", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messages).To(HaveLen(2))
				Expect(messages[0].Contents).To(Equal("hello"))
				Expect(messages[1].Contents).To(Equal("goodbye"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SearchMessages", func() {
		var (
			messages []repository.Message
			err      error
		)

		JustBeforeEach(func() {
			messages, err = repo.SearchMessages(ctx, "ell")
		})

		When("a message matches", func() {
			BeforeEach(func() {
				fakeStorage.SearchByStub = func(ctx context.Context, column string, substring string, entities any) error {
					msgs := entities.(*[]repository.Message)
					*msgs = []repository.Message{
						{ID: 1, UserName: "alice", Contents: "hello"},
					}
					return nil
				}
			})

			It("should search the contents column", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(messages).To(HaveLen(1))
				Expect(messages[0].Contents).To(Equal("hello"))

				Expect(fakeStorage.SearchByCallCount()).To(Equal(1))
				_, col, substr, _ := fakeStorage.SearchByArgsForCall(0)
				Expect(col).To(Equal("contents"))
				Expect(substr).To(Equal("ell"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.SearchByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetMessage", func() {
		var (
			message repository.Message
			err     error
		)

		JustBeforeEach(func() {
			message, err = repo.GetMessage(ctx, 1)
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					m := entity.(*repository.Message)
					*m = repository.Message{ID: 1, UserName: "alice", Contents: "hello"}
					return nil
				}
			})

			It("should return the message", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(message.Contents).To(Equal("hello"))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(1)))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrMessageNotFound", func() {
				Expect(err).To(MatchError(repository.ErrMessageNotFound))
			})
		})
	})

	Describe("UpdateMessage", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateMessage(ctx, 1, "edited")
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(nil)
			})

			It("should update only the contents column", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateByCallCount()).To(Equal(1))
				_, model, col, val, updates := fakeStorage.UpdateByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Message{}))
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(1)))
				Expect(updates).To(Equal(map[string]any{"contents": "edited"}))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("should return ErrMessageNotFound", func() {
				Expect(err).To(MatchError(repository.ErrMessageNotFound))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteMessage", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteMessage(ctx, 1)
		})

		When("the message exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(nil)
			})

			It("should delete the row", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
				_, model, col, val := fakeStorage.DeleteByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Message{}))
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(1)))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(db.ErrNotFound)
			})

			It("should return ErrMessageNotFound", func() {
				Expect(err).To(MatchError(repository.ErrMessageNotFound))
			})
		})
	})
})
