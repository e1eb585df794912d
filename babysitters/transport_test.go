package babysitters_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/Tetricia805/DayStar-DayCare-center/babysitters"
	"github.com/Tetricia805/DayStar-DayCare-center/store"
	"github.com/Tetricia805/DayStar-DayCare-center/store/mocks"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
)

var _ = Describe("Transport", func() {

	var (
		router    *mux.Router
		recorder  *httptest.ResponseRecorder
		mockStore *mocks.MockStore

		httpMethodToUse, httpEndpointToUse, httpBodyToUse string
	)

	var (
		assertHttpCode = func(code int) {
			It(fmt.Sprintf("should respond with status code %d", code), func() {
				Expect(recorder.Code).To(Equal(code))
			})
		}

		assertJsonResponse = func(response string) {
			It("should respond with json response", func() {
				Expect(recorder.Body.String()).To(MatchJSON(response))
			})
		}
	)

	BeforeEach(func() {
		mockStore = &mocks.MockStore{}
		handlerFactory := &HandlerFactory{
			Service: &BabysitterService{
				Store: mockStore,
			},
		}

		opts := []kithttp.ServerOption{
			kithttp.ServerErrorEncoder(EncodeError),
		}

		router = mux.NewRouter()
		router.Handle("/babysitters", handlerFactory.Add(opts)).Methods(http.MethodPost)
		router.Handle("/babysitters", handlerFactory.List(opts)).Methods(http.MethodGet)
		router.Handle("/babysitters/{babysitterId}", handlerFactory.Get(opts)).Methods(http.MethodGet)
		router.Handle("/babysitters/{babysitterId}", handlerFactory.Update(opts)).Methods(http.MethodPut)
		router.Handle("/babysitters/{babysitterId}", handlerFactory.Delete(opts)).Methods(http.MethodDelete)
	})

	JustBeforeEach(func() {
		recorder = httptest.NewRecorder()
		req := httptest.NewRequest(httpMethodToUse, httpEndpointToUse, strings.NewReader(httpBodyToUse))
		router.ServeHTTP(recorder, req)
	})

	Context("POST /babysitters", func() {

		BeforeEach(func() {
			httpMethodToUse = http.MethodPost
			httpEndpointToUse = "/babysitters"
			httpBodyToUse = fmt.Sprintf(`{
				"firstName": "Jane",
				"lastName": "Doe",
				"phoneNumber": "0700123456",
				"nin": "CF900211000XYZ",
				"dateOfBirth": "%s",
				"nextOfKinName": "John Doe",
				"nextOfKinPhone": "0700654321",
				"nextOfKinRelationship": "brother"
			}`, time.Now().UTC().AddDate(-25, 0, 0).Format("2006-01-02"))
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("AddBabysitter", mock.Anything, mock.Anything).Return(store.Babysitter{BabysitterId: 7}, nil)
			})
			assertHttpCode(http.StatusCreated)
			assertJsonResponse(`{"babysitterId": 7, "message": "Babysitter registered successfully"}`)
		})

		Context("when mandatory fields are missing", func() {
			BeforeEach(func() {
				httpBodyToUse = `{"firstName": "Jane"}`
			})
			assertHttpCode(http.StatusBadRequest)
		})

		Context("when the babysitter is out of the age bounds", func() {
			BeforeEach(func() {
				httpBodyToUse = fmt.Sprintf(`{
					"firstName": "Jane",
					"lastName": "Doe",
					"phoneNumber": "0700123456",
					"nin": "CF900211000XYZ",
					"dateOfBirth": "%s",
					"nextOfKinName": "John Doe",
					"nextOfKinPhone": "0700654321",
					"nextOfKinRelationship": "brother"
				}`, time.Now().UTC().AddDate(-17, 0, 0).Format("2006-01-02"))
			})
			assertHttpCode(http.StatusBadRequest)
		})
	})

	Context("GET /babysitters/{babysitterId}", func() {

		BeforeEach(func() {
			httpMethodToUse = http.MethodGet
			httpEndpointToUse = "/babysitters/7"
			httpBodyToUse = ""
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("GetBabysitter", mock.Anything, 7).Return(store.Babysitter{
					BabysitterId:          7,
					FirstName:             "Jane",
					LastName:              "Doe",
					PhoneNumber:           "0700123456",
					Nin:                   "CF900211000XYZ",
					DateOfBirth:           time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC),
					NextOfKinName:         "John Doe",
					NextOfKinPhone:        "0700654321",
					NextOfKinRelationship: "brother",
				}, nil)
			})
			assertHttpCode(http.StatusOK)
			assertJsonResponse(`{
				"id": 7,
				"firstName": "Jane",
				"lastName": "Doe",
				"phoneNumber": "0700123456",
				"nin": "CF900211000XYZ",
				"dateOfBirth": "1999-04-12",
				"nextOfKinName": "John Doe",
				"nextOfKinPhone": "0700654321",
				"nextOfKinRelationship": "brother"
			}`)
		})

		Context("when the babysitter does not exist", func() {
			BeforeEach(func() {
				mockStore.On("GetBabysitter", mock.Anything, 7).Return(store.Babysitter{}, store.ErrBabysitterNotFound)
			})
			assertHttpCode(http.StatusNotFound)
		})

		Context("when the id is not an integer", func() {
			BeforeEach(func() { httpEndpointToUse = "/babysitters/seven" })
			assertHttpCode(http.StatusBadRequest)
		})
	})

	Context("DELETE /babysitters/{babysitterId}", func() {

		BeforeEach(func() {
			httpMethodToUse = http.MethodDelete
			httpEndpointToUse = "/babysitters/7"
			httpBodyToUse = ""
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("DeleteBabysitter", mock.Anything, 7).Return(nil)
			})
			assertHttpCode(http.StatusNoContent)
		})

		Context("when the babysitter does not exist", func() {
			BeforeEach(func() {
				mockStore.On("DeleteBabysitter", mock.Anything, 7).Return(store.ErrBabysitterNotFound)
			})
			assertHttpCode(http.StatusNotFound)
		})
	})
})
