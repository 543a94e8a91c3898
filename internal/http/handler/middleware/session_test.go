package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"pinboard/internal/http/handler/middleware"
	tokenIssuer "pinboard/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SessionMiddleware", func() {
	var (
		issuer   *tokenIssuer.JWTService
		sm       *middleware.SessionMiddleware
		w        *httptest.ResponseRecorder
		req      *http.Request
		resolved middleware.Identity
		next     http.Handler
	)

	BeforeEach(func() {
		issuer = tokenIssuer.NewJWTService([]byte("test-secret"))
		sm = middleware.NewSessionMiddleware(issuer)
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/", nil)

		resolved = middleware.Identity{}
		next = http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			resolved = middleware.IdentityFromContext(r.Context())
		})
	})

	signToken := func(expiration time.Duration) string {
		token, err := issuer.Sign(issuer.Generate(tokenIssuer.TokenInfo{
			UserName:   "gandalf",
			Subject:    "7",
			Expiration: expiration,
		}))
		Expect(err).NotTo(HaveOccurred())
		return token
	}

	JustBeforeEach(func() {
		sm.Resolve(next).ServeHTTP(w, req)
	})

	When("the session cookie holds a valid token", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{
				Name:  middleware.SessionCookie,
				Value: signToken(time.Hour),
			})
		})

		It("should resolve the authenticated identity", func() {
			Expect(resolved.Authenticated).To(BeTrue())
			Expect(resolved.Username).To(Equal("gandalf"))
			Expect(resolved.UserID).To(Equal("7"))
		})
	})

	When("no session cookie is present", func() {
		It("should resolve the anonymous identity", func() {
			Expect(resolved.Authenticated).To(BeFalse())
			Expect(resolved.Username).To(BeEmpty())
		})
	})

	When("the token is garbage", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{
				Name:  middleware.SessionCookie,
				Value: "not-a-token",
			})
		})

		It("should resolve the anonymous identity", func() {
			Expect(resolved.Authenticated).To(BeFalse())
		})
	})

	When("the token is signed with a different secret", func() {
		BeforeEach(func() {
			other := tokenIssuer.NewJWTService([]byte("other-secret"))
			token, err := other.Sign(other.Generate(tokenIssuer.TokenInfo{
				UserName:   "gandalf",
				Subject:    "7",
				Expiration: time.Hour,
			}))
			Expect(err).NotTo(HaveOccurred())
			req.AddCookie(&http.Cookie{
				Name:  middleware.SessionCookie,
				Value: token,
			})
		})

		It("should resolve the anonymous identity", func() {
			Expect(resolved.Authenticated).To(BeFalse())
		})
	})

	When("the token has expired", func() {
		BeforeEach(func() {
			tokenIssuer.TimeNow = func() time.Time {
				return time.Now().Add(-48 * time.Hour)
			}
			token := signToken(time.Hour)
			tokenIssuer.TimeNow = time.Now

			req.AddCookie(&http.Cookie{
				Name:  middleware.SessionCookie,
				Value: token,
			})
		})

		It("should resolve the anonymous identity", func() {
			Expect(resolved.Authenticated).To(BeFalse())
		})
	})
})
