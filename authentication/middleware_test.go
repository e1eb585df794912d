package authentication_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/Tetricia805/DayStar-DayCare-center/authentication"
	"github.com/Tetricia805/DayStar-DayCare-center/shared"

	"github.com/dgrijalva/jwt-go"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func contextWithClaims(claims map[string]interface{}) context.Context {
	return context.WithValue(context.Background(), "claims", claims)
}

var _ = Describe("Authenticator", func() {

	var (
		authenticator *Authenticator
		recorder      *httptest.ResponseRecorder
		reqToUse      *http.Request

		capturedClaims map[string]interface{}
		nextCalled     bool
	)

	var next = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		nextCalled = true
		capturedClaims, _ = req.Context().Value("claims").(map[string]interface{})
		w.WriteHeader(http.StatusOK)
	})

	signToken := func(secret string, claims jwt.MapClaims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		Expect(err).To(BeNil())
		return signed
	}

	BeforeEach(func() {
		authenticator = &Authenticator{
			Config: &shared.AppConfig{JwtSecret: "test-secret"},
			Logger: shared.NewLogger("test"),
		}
		recorder = httptest.NewRecorder()
		capturedClaims = nil
		nextCalled = false
		reqToUse = httptest.NewRequest(http.MethodGet, "/api/children", nil)
	})

	Context("Verify", func() {

		JustBeforeEach(func() {
			authenticator.Verify(next, []string{"/healthz", "/api/auth/login"}).ServeHTTP(recorder, reqToUse)
		})

		Context("with a valid token", func() {
			BeforeEach(func() {
				token := signToken("test-secret", jwt.MapClaims{
					"userId": 42,
					"email":  "grace.okello@gmail.com",
					"roles":  []string{"manager"},
					"exp":    time.Now().Add(time.Hour).Unix(),
				})
				reqToUse.Header.Set("Authorization", "Bearer "+token)
			})

			It("should store the claims into the request context", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(capturedClaims["userId"]).To(Equal(42))
				Expect(capturedClaims["email"]).To(Equal("grace.okello@gmail.com"))
				Expect(capturedClaims["manager"]).To(Equal(true))
			})
		})

		Context("with an expired token", func() {
			BeforeEach(func() {
				token := signToken("test-secret", jwt.MapClaims{
					"userId": 42,
					"exp":    time.Now().Add(-time.Hour).Unix(),
				})
				reqToUse.Header.Set("Authorization", "Bearer "+token)
			})

			It("should respond with status code 400", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		Context("with a token signed with another secret", func() {
			BeforeEach(func() {
				token := signToken("another-secret", jwt.MapClaims{
					"userId": 42,
					"exp":    time.Now().Add(time.Hour).Unix(),
				})
				reqToUse.Header.Set("Authorization", "Bearer "+token)
			})

			It("should respond with status code 400", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		Context("without a token", func() {
			It("should respond with status code 400", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		Context("on an excluded path", func() {
			BeforeEach(func() {
				reqToUse = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			})

			It("should let the request through without a token", func() {
				Expect(nextCalled).To(BeTrue())
			})
		})
	})

	Context("Roles", func() {

		JustBeforeEach(func() {
			authenticator.Roles(next, shared.ROLE_ADMIN, shared.ROLE_MANAGER).ServeHTTP(recorder, reqToUse)
		})

		Context("when the token carries an allowed role", func() {
			BeforeEach(func() {
				reqToUse = reqToUse.WithContext(contextWithClaims(map[string]interface{}{
					"userId":            42,
					shared.ROLE_MANAGER: true,
				}))
			})

			It("should let the request through", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(recorder.Code).To(Equal(http.StatusOK))
			})
		})

		Context("when the token carries no allowed role", func() {
			BeforeEach(func() {
				reqToUse = reqToUse.WithContext(contextWithClaims(map[string]interface{}{
					"userId":               42,
					shared.ROLE_BABYSITTER: true,
				}))
			})

			It("should respond with status code 401", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		Context("when there are no claims at all", func() {
			It("should respond with status code 401", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})
})
