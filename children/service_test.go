package children_test

import (
	"context"

	. "github.com/Tetricia805/DayStar-DayCare-center/children"
	"github.com/Tetricia805/DayStar-DayCare-center/store"
	"github.com/Tetricia805/DayStar-DayCare-center/store/mocks"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

var _ = Describe("Service", func() {

	var (
		ctx           = context.Background()
		childService  Service
		mockStore     *mocks.MockStore
		returnedError error
		createdChild  store.Child
		childRef      ChildTransport
	)

	var (
		assertNoError = func() {
			It("should not return an error", func() {
				Expect(returnedError).To(BeNil())
			})
		}
		assertErrorWithCause = func(cause error) {
			It("should return an error", func() {
				Expect(returnedError).NotTo(BeNil())
				Expect(errors.Cause(returnedError)).To(Equal(cause))
			})
		}
	)

	BeforeEach(func() {
		mockStore = &mocks.MockStore{}
		childService = &ChildService{
			Store: mockStore,
		}

		childRef = ChildTransport{
			FullName:              "Amara Okello",
			Age:                   3,
			SessionType:           "full-day",
			ParentName:            "Grace Okello",
			ParentPhone:           "0772001122",
			AlternateContactName:  "Peter Okello",
			AlternateContactPhone: "0772003344",
			RelationshipToChild:   "uncle",
			Allergies:             "peanuts",
		}
	})

	Context("AddChild", func() {

		JustBeforeEach(func() {
			createdChild, returnedError = childService.AddChild(ctx, childRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("AddChild", mock.Anything, mock.Anything).Return(store.Child{ChildId: 4, FullName: "Amara Okello"}, nil)
			})
			assertNoError()

			It("should return the created child", func() {
				Expect(createdChild.ChildId).To(Equal(4))
			})
		})

		Context("when the full name is missing", func() {
			BeforeEach(func() { childRef.FullName = "" })
			assertErrorWithCause(ErrMissingMandatoryFields)

			It("should not create the child", func() {
				mockStore.AssertNotCalled(GinkgoT(), "AddChild", mock.Anything, mock.Anything)
			})
		})

		Context("when the session type is unknown", func() {
			BeforeEach(func() { childRef.SessionType = "night-shift" })
			assertErrorWithCause(ErrInvalidSessionType)
		})
	})

	Context("GetChild", func() {

		var returnedChild store.Child

		JustBeforeEach(func() {
			returnedChild, returnedError = childService.GetChild(ctx, ChildTransport{Id: 4})
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("GetChild", mock.Anything, 4).Return(store.Child{ChildId: 4, FullName: "Amara Okello"}, nil)
			})
			assertNoError()

			It("should return the child", func() {
				Expect(returnedChild.FullName).To(Equal("Amara Okello"))
			})
		})

		Context("when the child does not exist", func() {
			BeforeEach(func() {
				mockStore.On("GetChild", mock.Anything, 4).Return(store.Child{}, store.ErrChildNotFound)
			})
			assertErrorWithCause(store.ErrChildNotFound)
		})
	})

	Context("ListChildren", func() {

		var allChildren []store.Child

		JustBeforeEach(func() {
			allChildren, returnedError = childService.ListChildren(ctx)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("ListChildren", mock.Anything).Return([]store.Child{
					{ChildId: 1},
					{ChildId: 2},
					{ChildId: 3},
				}, nil)
			})
			assertNoError()

			It("should return all children", func() {
				Expect(allChildren).To(HaveLen(3))
			})
		})
	})

	Context("UpdateChild", func() {

		JustBeforeEach(func() {
			childRef.Id = 4
			createdChild, returnedError = childService.UpdateChild(ctx, childRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("UpdateChild", mock.Anything, mock.Anything).Return(store.Child{ChildId: 4}, nil)
			})
			assertNoError()
		})

		Context("when the child does not exist", func() {
			BeforeEach(func() {
				mockStore.On("UpdateChild", mock.Anything, mock.Anything).Return(store.Child{}, store.ErrChildNotFound)
			})
			assertErrorWithCause(store.ErrChildNotFound)
		})

		Context("when the session type is unknown", func() {
			BeforeEach(func() { childRef.SessionType = "overnight" })
			assertErrorWithCause(ErrInvalidSessionType)
		})
	})

	Context("DeleteChild", func() {

		JustBeforeEach(func() {
			returnedError = childService.DeleteChild(ctx, ChildTransport{Id: 4})
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("DeleteChild", mock.Anything, 4).Return(nil)
			})
			assertNoError()
		})

		Context("when the child does not exist", func() {
			BeforeEach(func() {
				mockStore.On("DeleteChild", mock.Anything, 4).Return(store.ErrChildNotFound)
			})
			assertErrorWithCause(store.ErrChildNotFound)
		})
	})
})
