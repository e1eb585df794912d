package finance_test

import (
	"context"

	. "github.com/Tetricia805/DayStar-DayCare-center/finance"
	"github.com/Tetricia805/DayStar-DayCare-center/store"
	"github.com/Tetricia805/DayStar-DayCare-center/store/mocks"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

var _ = Describe("Service", func() {

	var (
		ctx            = context.Background()
		financeService Service
		mockStore      *mocks.MockStore
		returnedError  error
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
		financeService = &FinanceService{
			Store: mockStore,
		}
	})

	Context("AddIncome", func() {

		var (
			createdIncome store.Income
			incomeRef     IncomeTransport
		)

		BeforeEach(func() {
			incomeRef = IncomeTransport{
				Amount:     250000,
				Source:     "tuition",
				IncomeDate: "2026-03-02",
			}
		})

		JustBeforeEach(func() {
			createdIncome, returnedError = financeService.AddIncome(ctx, incomeRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("AddIncome", mock.Anything, mock.Anything).Return(store.Income{IncomeId: 1, Amount: 250000}, nil)
			})
			assertNoError()

			It("should return the created entry", func() {
				Expect(createdIncome.IncomeId).To(Equal(1))
			})
		})

		Context("when the amount is negative", func() {
			BeforeEach(func() { incomeRef.Amount = -50 })
			assertErrorWithCause(ErrInvalidAmount)

			It("should not create the entry", func() {
				mockStore.AssertNotCalled(GinkgoT(), "AddIncome", mock.Anything, mock.Anything)
			})
		})

		Context("when the source is missing", func() {
			BeforeEach(func() { incomeRef.Source = "" })
			assertErrorWithCause(ErrMissingMandatoryFields)
		})

		Context("when the date is not a date", func() {
			BeforeEach(func() { incomeRef.IncomeDate = "soon" })
			assertErrorWithCause(ErrInvalidDate)
		})
	})

	Context("AddBudget", func() {

		var (
			createdBudget store.Budget
			budgetRef     BudgetTransport
		)

		BeforeEach(func() {
			budgetRef = BudgetTransport{
				Category: "meals",
				Amount:   800000,
				Month:    "2026-03",
			}
		})

		JustBeforeEach(func() {
			createdBudget, returnedError = financeService.AddBudget(ctx, budgetRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("AddBudget", mock.Anything, mock.Anything).Return(store.Budget{BudgetId: 3}, nil)
			})
			assertNoError()

			It("should return the created line", func() {
				Expect(createdBudget.BudgetId).To(Equal(3))
			})
		})

		Context("when the month has the wrong format", func() {
			BeforeEach(func() { budgetRef.Month = "march 2026" })
			assertErrorWithCause(ErrInvalidMonth)
		})
	})

	Context("AddPayment", func() {

		var (
			createdPayment store.Payment
			paymentRef     PaymentTransport
		)

		BeforeEach(func() {
			paymentRef = PaymentTransport{
				ParentId:    2,
				ChildId:     4,
				Amount:      150000,
				PaymentType: "tuition",
				PaymentDate: "2026-03-02",
				DueDate:     "2026-03-15",
			}
		})

		JustBeforeEach(func() {
			createdPayment, returnedError = financeService.AddPayment(ctx, paymentRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("ChildExists", mock.Anything, 4).Return(true)
				mockStore.On("AddPayment", mock.Anything, mock.Anything).Return(store.Payment{
					PaymentId: 6,
					Status:    store.PAYMENT_PENDING,
					Reference: "d9aa2d20-0c2f-4bc0-8f4f-92ecb4c4a37c",
				}, nil)
			})
			assertNoError()

			It("should default the status to pending", func() {
				Expect(createdPayment.Status).To(Equal(store.PAYMENT_PENDING))
			})

			It("should carry a generated reference", func() {
				Expect(createdPayment.Reference).NotTo(BeEmpty())
			})
		})

		Context("when the child is not registered", func() {
			BeforeEach(func() {
				mockStore.On("ChildExists", mock.Anything, 4).Return(false)
			})
			assertErrorWithCause(ErrUnknownChild)
		})

		Context("when the payment type is missing", func() {
			BeforeEach(func() { paymentRef.PaymentType = "" })
			assertErrorWithCause(ErrMissingMandatoryFields)
		})
	})

	Context("UpdatePaymentStatus", func() {

		var updatedPayment store.Payment

		JustBeforeEach(func() {
			updatedPayment, returnedError = financeService.UpdatePaymentStatus(ctx, PaymentTransport{Id: 6, Status: "paid"})
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("UpdatePaymentStatus", mock.Anything, 6, "paid").Return(store.Payment{PaymentId: 6, Status: "paid"}, nil)
			})
			assertNoError()

			It("should return the updated payment", func() {
				Expect(updatedPayment.Status).To(Equal("paid"))
			})
		})

		Context("when the payment does not exist", func() {
			BeforeEach(func() {
				mockStore.On("UpdatePaymentStatus", mock.Anything, 6, "paid").Return(store.Payment{}, store.ErrPaymentNotFound)
			})
			assertErrorWithCause(store.ErrPaymentNotFound)
		})
	})

	Context("UpdatePaymentStatus with an unknown status", func() {

		JustBeforeEach(func() {
			_, returnedError = financeService.UpdatePaymentStatus(ctx, PaymentTransport{Id: 6, Status: "refunded"})
		})

		assertErrorWithCause(ErrInvalidPaymentStatus)

		It("should not touch the payment", func() {
			mockStore.AssertNotCalled(GinkgoT(), "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	})

	Context("GetDashboard", func() {

		var dashboard Dashboard

		JustBeforeEach(func() {
			dashboard, returnedError = financeService.GetDashboard(ctx)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("CurrentMonthIncomeTotal", mock.Anything).Return(1250000.0, nil)
				mockStore.On("CurrentMonthExpenseTotal", mock.Anything).Return(430000.0, nil)
				mockStore.On("CountPendingPayments", mock.Anything).Return(7, nil)
			})
			assertNoError()

			It("should aggregate the current month totals", func() {
				Expect(dashboard.TotalIncome).To(Equal(1250000.0))
				Expect(dashboard.TotalExpenses).To(Equal(430000.0))
				Expect(dashboard.PendingPayments).To(Equal(7))
			})
		})

		Context("when the store fails", func() {
			BeforeEach(func() {
				mockStore.On("CurrentMonthIncomeTotal", mock.Anything).Return(0.0, errors.New("connection reset"))
			})

			It("should return an error", func() {
				Expect(returnedError).NotTo(BeNil())
			})
		})
	})

	Context("GetFinanceReport", func() {

		var report FinanceReport

		JustBeforeEach(func() {
			report, returnedError = financeService.GetFinanceReport(ctx)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("GetMonthlyIncome", mock.Anything).Return([]store.MonthlyTotal{
					{Month: 3, Year: 2026, Total: 1250000},
				}, nil)
				mockStore.On("GetMonthlyExpenses", mock.Anything).Return([]store.MonthlyTotal{
					{Month: 3, Year: 2026, Total: 430000},
				}, nil)
				mockStore.On("GetPaymentStatusCounts", mock.Anything).Return([]store.PaymentStatusCount{
					{Status: "pending", Count: 7},
					{Status: "paid", Count: 22},
				}, nil)
			})
			assertNoError()

			It("should combine all three series", func() {
				Expect(report.MonthlyIncome).To(HaveLen(1))
				Expect(report.MonthlyExpenses).To(HaveLen(1))
				Expect(report.PaymentStatus).To(HaveLen(2))
			})
		})
	})
})
