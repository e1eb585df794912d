package attendance_test

import (
	"context"

	. "github.com/Tetricia805/DayStar-DayCare-center/attendance"
	"github.com/Tetricia805/DayStar-DayCare-center/store"
	"github.com/Tetricia805/DayStar-DayCare-center/store/mocks"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

var _ = Describe("Service", func() {

	var (
		ctx               = context.Background()
		attendanceService Service
		mockStore         *mocks.MockStore
		returnedError     error
		createdAttendance store.Attendance
		attendanceRef     AttendanceTransport
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
		attendanceService = &AttendanceService{
			Store: mockStore,
		}

		attendanceRef = AttendanceTransport{
			ChildId:     4,
			Date:        "2026-03-02",
			SessionType: "full-day",
			Status:      "present",
			CheckInTime: "08:15",
		}
	})

	Context("AddAttendance", func() {

		JustBeforeEach(func() {
			createdAttendance, returnedError = attendanceService.AddAttendance(ctx, attendanceRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("ChildExists", mock.Anything, 4).Return(true)
				mockStore.On("AddAttendance", mock.Anything, mock.Anything).Return(store.Attendance{AttendanceId: 9, ChildId: 4}, nil)
			})
			assertNoError()

			It("should return the created record", func() {
				Expect(createdAttendance.AttendanceId).To(Equal(9))
			})
		})

		Context("when the child is not registered", func() {
			BeforeEach(func() {
				mockStore.On("ChildExists", mock.Anything, 4).Return(false)
			})
			assertErrorWithCause(ErrUnknownChild)

			It("should not create the record", func() {
				mockStore.AssertNotCalled(GinkgoT(), "AddAttendance", mock.Anything, mock.Anything)
			})
		})

		Context("when the status is unknown", func() {
			BeforeEach(func() { attendanceRef.Status = "sleeping" })
			assertErrorWithCause(ErrInvalidStatus)
		})

		Context("when the session type is unknown", func() {
			BeforeEach(func() { attendanceRef.SessionType = "midnight" })
			assertErrorWithCause(ErrInvalidSession)
		})

		Context("when the date is missing", func() {
			BeforeEach(func() { attendanceRef.Date = "" })
			assertErrorWithCause(ErrInvalidDate)
		})
	})

	Context("UpdateAttendance", func() {

		JustBeforeEach(func() {
			attendanceRef.Id = 9
			attendanceRef.CheckOutTime = "17:05"
			createdAttendance, returnedError = attendanceService.UpdateAttendance(ctx, attendanceRef)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("UpdateAttendance", mock.Anything, mock.Anything).Return(store.Attendance{AttendanceId: 9}, nil)
			})
			assertNoError()
		})

		Context("when the record does not exist", func() {
			BeforeEach(func() {
				mockStore.On("UpdateAttendance", mock.Anything, mock.Anything).Return(store.Attendance{}, store.ErrAttendanceNotFound)
			})
			assertErrorWithCause(store.ErrAttendanceNotFound)
		})

		Context("when the status is unknown", func() {
			BeforeEach(func() { attendanceRef.Status = "gone" })
			assertErrorWithCause(ErrInvalidStatus)
		})
	})

	Context("ListChildAttendance", func() {

		var records []store.Attendance

		JustBeforeEach(func() {
			records, returnedError = attendanceService.ListChildAttendance(ctx, 4)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("ListChildAttendance", mock.Anything, 4).Return([]store.Attendance{
					{AttendanceId: 1, ChildId: 4},
					{AttendanceId: 2, ChildId: 4},
				}, nil)
			})
			assertNoError()

			It("should only return records for this child", func() {
				Expect(records).To(HaveLen(2))
				for _, record := range records {
					Expect(record.ChildId).To(Equal(4))
				}
			})
		})
	})

	Context("GetAttendanceReport", func() {

		var report AttendanceReport

		JustBeforeEach(func() {
			report, returnedError = attendanceService.GetAttendanceReport(ctx)
		})

		Context("default", func() {
			BeforeEach(func() {
				mockStore.On("GetAttendanceMonthlySummary", mock.Anything).Return([]store.AttendanceMonthlySummary{
					{Month: 3, Year: 2026, TotalDays: 40, PresentDays: 35, AbsentDays: 3, LateDays: 2},
				}, nil)
				mockStore.On("GetChildAttendanceSummary", mock.Anything).Return([]store.ChildAttendanceSummary{
					{ChildId: 4, FullName: "Amara Okello", TotalDays: 20, PresentDays: 18},
				}, nil)
			})
			assertNoError()

			It("should combine both summaries", func() {
				Expect(report.MonthlySummary).To(HaveLen(1))
				Expect(report.ChildSummary).To(HaveLen(1))
				Expect(report.MonthlySummary[0].PresentDays).To(Equal(35))
			})
		})
	})
})
