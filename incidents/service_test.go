package incidents_test

import (
	"context"

	. "github.com/Tetricia805/DayStar-DayCare-center/incidents"
	"github.com/Tetricia805/DayStar-DayCare-center/store"
	"github.com/Tetricia805/DayStar-DayCare-center/store/mocks"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

var _ = Describe("Service", func() {

	var (
		ctx             = context.Background()
		incidentService Service
		mockStore       *mocks.MockStore
		returnedError   error
		createdIncident store.Incident
		incidentRef     IncidentTransport
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
		incidentService = &IncidentService{
			Store: mockStore,
		}

		incidentRef = IncidentTransport{
			ChildId:      4,
			Date:         "2026-03-02",
			IncidentTime: "10:30",
			IncidentType: "fall",
			Description:  "slipped on the playground",
			Location:     "playground",
			Severity:     "low",
			ActionTaken:  "applied ice pack, monitored for an hour",
			ReportedBy:   "Jane Doe",
		}
	})

	Context("AddIncident", func() {

		JustBeforeEach(func() {
			createdIncident, returnedError = incidentService.AddIncident(ctx, incidentRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("ChildExists", mock.Anything, 4).Return(true)
				mockStore.On("AddIncident", mock.Anything, mock.Anything).Return(store.Incident{IncidentId: 12, ChildId: 4}, nil)
			})
			assertNoError()

			It("should return the created incident", func() {
				Expect(createdIncident.IncidentId).To(Equal(12))
			})
		})

		Context("when the child is not registered", func() {
			BeforeEach(func() {
				mockStore.On("ChildExists", mock.Anything, 4).Return(false)
			})
			assertErrorWithCause(ErrUnknownChild)

			It("should not create the incident", func() {
				mockStore.AssertNotCalled(GinkgoT(), "AddIncident", mock.Anything, mock.Anything)
			})
		})

		Context("when the severity is unknown", func() {
			BeforeEach(func() { incidentRef.Severity = "catastrophic" })
			assertErrorWithCause(ErrInvalidSeverity)
		})

		Context("when the description is missing", func() {
			BeforeEach(func() { incidentRef.Description = "" })
			assertErrorWithCause(ErrMissingMandatoryFields)
		})

		Context("when the date is missing", func() {
			BeforeEach(func() { incidentRef.Date = "" })
			assertErrorWithCause(ErrInvalidDate)
		})
	})

	Context("UpdateIncident", func() {

		JustBeforeEach(func() {
			incidentRef.Id = 12
			createdIncident, returnedError = incidentService.UpdateIncident(ctx, incidentRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("UpdateIncident", mock.Anything, mock.Anything).Return(store.Incident{IncidentId: 12}, nil)
			})
			assertNoError()
		})

		Context("when the incident does not exist", func() {
			BeforeEach(func() {
				mockStore.On("UpdateIncident", mock.Anything, mock.Anything).Return(store.Incident{}, store.ErrIncidentNotFound)
			})
			assertErrorWithCause(store.ErrIncidentNotFound)
		})

		Context("when the severity is unknown", func() {
			BeforeEach(func() { incidentRef.Severity = "apocalyptic" })
			assertErrorWithCause(ErrInvalidSeverity)
		})
	})

	Context("ListChildIncidents", func() {

		var incidents []store.Incident

		JustBeforeEach(func() {
			incidents, returnedError = incidentService.ListChildIncidents(ctx, 4)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("ListChildIncidents", mock.Anything, 4).Return([]store.Incident{
					{IncidentId: 1, ChildId: 4},
				}, nil)
			})
			assertNoError()

			It("should only return incidents for this child", func() {
				Expect(incidents).To(HaveLen(1))
				Expect(incidents[0].ChildId).To(Equal(4))
			})
		})
	})

	Context("GetIncidentReport", func() {

		var report IncidentReport

		JustBeforeEach(func() {
			report, returnedError = incidentService.GetIncidentReport(ctx)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("GetIncidentTypeSummary", mock.Anything).Return([]store.IncidentTypeSummary{
					{IncidentType: "fall", TotalIncidents: 5, HighSeverity: 1, MediumSeverity: 2, LowSeverity: 2},
				}, nil)
				mockStore.On("GetIncidentMonthlySummary", mock.Anything).Return([]store.IncidentMonthlySummary{
					{Month: 3, Year: 2026, TotalIncidents: 5},
				}, nil)
			})
			assertNoError()

			It("should combine both summaries", func() {
				Expect(report.TypeSummary).To(HaveLen(1))
				Expect(report.MonthlySummary).To(HaveLen(1))
				Expect(report.TypeSummary[0].TotalIncidents).To(Equal(5))
			})
		})
	})
})
