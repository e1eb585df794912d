package finance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var (
	ErrBadRouting = errors.New("inconsistent mapping between route and handler (programmer error)")
	ErrInvalidId  = errors.New("id must be an integer")
)

type IncomeTransport struct {
	Id          int     `json:"id,omitempty"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Description string  `json:"description,omitempty"`
	IncomeDate  string  `json:"incomeDate"`
}

type ExpenseTransport struct {
	Id          int     `json:"id,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	ExpenseDate string  `json:"expenseDate"`
}

type BudgetTransport struct {
	Id       int     `json:"id,omitempty"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
}

type PaymentTransport struct {
	Id          int     `json:"id,omitempty"`
	ParentId    int     `json:"parentId"`
	ParentName  string  `json:"parentName,omitempty"`
	ChildId     int     `json:"childId"`
	ChildName   string  `json:"childName,omitempty"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"paymentType"`
	Status      string  `json:"status,omitempty"`
	Reference   string  `json:"reference,omitempty"`
	PaymentDate string  `json:"paymentDate"`
	DueDate     string  `json:"dueDate"`
}

type CreatedTransport struct {
	Id      int    `json:"id"`
	Message string `json:"message"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) AddIncome(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddIncomeEndpoint(h.Service),
		decodeIncomeTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListIncome(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListIncomeEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) AddExpense(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddExpenseEndpoint(h.Service),
		decodeExpenseTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListExpenses(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListExpensesEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) AddBudget(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddBudgetEndpoint(h.Service),
		decodeBudgetTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListBudget(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListBudgetEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) AddPayment(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddPaymentEndpoint(h.Service),
		decodePaymentTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListPayments(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListPaymentsEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) UpdatePaymentStatus(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeUpdatePaymentStatusEndpoint(h.Service),
		decodeUpdatePaymentTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Dashboard(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeDashboardEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Report(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeReportEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeAddIncomeEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(IncomeTransport)
		income, err := svc.AddIncome(ctx, req)
		if err != nil {
			return nil, err
		}

		return CreatedTransport{
			Id:      income.IncomeId,
			Message: "Income recorded successfully",
		}, nil
	}
}

func makeListIncomeEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		income, err := svc.ListIncome(ctx)
		if err != nil {
			return nil, err
		}

		ret := []IncomeTransport{}
		for _, entry := range income {
			ret = append(ret, incomeToTransport(entry))
		}

		return ret, nil
	}
}

func makeAddExpenseEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ExpenseTransport)
		expense, err := svc.AddExpense(ctx, req)
		if err != nil {
			return nil, err
		}

		return CreatedTransport{
			Id:      expense.ExpenseId,
			Message: "Expense recorded successfully",
		}, nil
	}
}

func makeListExpensesEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		expenses, err := svc.ListExpenses(ctx)
		if err != nil {
			return nil, err
		}

		ret := []ExpenseTransport{}
		for _, expense := range expenses {
			ret = append(ret, expenseToTransport(expense))
		}

		return ret, nil
	}
}

func makeAddBudgetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(BudgetTransport)
		budget, err := svc.AddBudget(ctx, req)
		if err != nil {
			return nil, err
		}

		return CreatedTransport{
			Id:      budget.BudgetId,
			Message: "Budget recorded successfully",
		}, nil
	}
}

func makeListBudgetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		budget, err := svc.ListBudget(ctx)
		if err != nil {
			return nil, err
		}

		ret := []BudgetTransport{}
		for _, line := range budget {
			ret = append(ret, budgetToTransport(line))
		}

		return ret, nil
	}
}

func makeAddPaymentEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(PaymentTransport)
		payment, err := svc.AddPayment(ctx, req)
		if err != nil {
			return nil, err
		}

		return CreatedTransport{
			Id:      payment.PaymentId,
			Message: "Payment recorded successfully",
		}, nil
	}
}

func makeListPaymentsEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		payments, err := svc.ListPayments(ctx)
		if err != nil {
			return nil, err
		}

		ret := []PaymentTransport{}
		for _, payment := range payments {
			ret = append(ret, paymentToTransport(payment))
		}

		return ret, nil
	}
}

func makeUpdatePaymentStatusEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(PaymentTransport)
		payment, err := svc.UpdatePaymentStatus(ctx, req)
		if err != nil {
			return nil, err
		}

		return paymentToTransport(payment), nil
	}
}

func makeDashboardEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		dashboard, err := svc.GetDashboard(ctx)
		if err != nil {
			return nil, err
		}

		return dashboard, nil
	}
}

func makeReportEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		report, err := svc.GetFinanceReport(ctx)
		if err != nil {
			return nil, err
		}

		return report, nil
	}
}

func incomeToTransport(income store.Income) IncomeTransport {
	return IncomeTransport{
		Id:          income.IncomeId,
		Amount:      income.Amount,
		Source:      income.Source,
		Description: income.Description.String,
		IncomeDate:  income.IncomeDate.UTC().Format("2006-01-02"),
	}
}

func expenseToTransport(expense store.Expense) ExpenseTransport {
	return ExpenseTransport{
		Id:          expense.ExpenseId,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description.String,
		ExpenseDate: expense.ExpenseDate.UTC().Format("2006-01-02"),
	}
}

func budgetToTransport(budget store.Budget) BudgetTransport {
	return BudgetTransport{
		Id:       budget.BudgetId,
		Category: budget.Category,
		Amount:   budget.Amount,
		Month:    budget.Month,
	}
}

func paymentToTransport(payment store.Payment) PaymentTransport {
	return PaymentTransport{
		Id:          payment.PaymentId,
		ParentId:    payment.ParentId,
		ParentName:  payment.ParentName,
		ChildId:     payment.ChildId,
		ChildName:   payment.ChildName,
		Amount:      payment.Amount,
		PaymentType: payment.PaymentType,
		Status:      payment.Status,
		Reference:   payment.Reference,
		PaymentDate: payment.PaymentDate.UTC().Format("2006-01-02"),
		DueDate:     payment.DueDate.UTC().Format("2006-01-02"),
	}
}

func decodeIncomeTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request IncomeTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeExpenseTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request ExpenseTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeBudgetTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request BudgetTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodePaymentTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request PaymentTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeUpdatePaymentTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	paymentId, ok := vars["paymentId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(paymentId)
	if err != nil {
		return nil, ErrInvalidId
	}

	var request PaymentTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	request.Id = id
	return request, nil
}

func ignorePayload(_ context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

// encode errors from business-logic
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch errors.Cause(err) {
	case ErrInvalidAmount, ErrMissingMandatoryFields, ErrInvalidDate, ErrInvalidMonth,
		ErrInvalidPaymentStatus, ErrUnknownChild, ErrInvalidId:
		w.WriteHeader(http.StatusBadRequest)
	case store.ErrPaymentNotFound, store.ErrChildNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
