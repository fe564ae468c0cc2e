package model

import (
	"fmt"
	"strconv"
)

type PayType string

const (
	PayTypeHourly     PayType = "Hourly"
	PayTypeSalary     PayType = "Salary"
	PayTypeCommission PayType = "Commission"
)

type EmploymentStatus string

const (
	StatusFullTime EmploymentStatus = "FT"
	StatusPartTime EmploymentStatus = "PT"
)

// Record is one employee census entry. RecordID is assigned at ingestion and
// never changes; everything else is editable.
type Record struct {
	RecordID string `json:"recordId"`

	// Personal
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender,omitempty"`

	// Contact
	HomeAddress1 string `json:"homeAddress1"`
	HomeAddress2 string `json:"homeAddress2,omitempty"`
	HomeCity     string `json:"homeCity"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	County       string `json:"county,omitempty"`
	PrimaryPhone string `json:"primaryPhone"`
	Email        string `json:"email"`

	// Employment
	FTPTStatus      EmploymentStatus `json:"ftPtStatus"`
	AvgHoursPerWeek float64          `json:"avgHoursPerWeek"`
	HourlyRate      float64          `json:"hourlyRate"`
	AnnualWages     float64          `json:"annualWages"`
	PayType         PayType          `json:"payType"`
	JobTitle        string           `json:"jobTitle,omitempty"`

	// Dates (MM/DD/YYYY strings as received from import)
	EmploymentStartDate          string `json:"employmentStartDate"`
	EmploymentEndDate            string `json:"employmentEndDate,omitempty"`
	EnrollmentPeriodStartDate    string `json:"enrollmentPeriodStartDate,omitempty"`
	EnrollmentPeriodEndDate      string `json:"enrollmentPeriodEndDate,omitempty"`
	CoverageEligibilityStartDate string `json:"coverageEligibilityStartDate,omitempty"`
	CoverageEligibilityEndDate   string `json:"coverageEligibilityEndDate,omitempty"`

	Class         string  `json:"class,omitempty"`
	StipendAmount float64 `json:"stipendAmount,omitempty"`
}

// FieldValue returns the record field named by its JSON key as a string.
// Numeric fields are formatted; unknown names return "".
func (r *Record) FieldValue(name string) string {
	switch name {
	case "firstName":
		return r.FirstName
	case "lastName":
		return r.LastName
	case "dob":
		return r.DOB
	case "gender":
		return r.Gender
	case "homeAddress1":
		return r.HomeAddress1
	case "homeAddress2":
		return r.HomeAddress2
	case "homeCity":
		return r.HomeCity
	case "state":
		return r.State
	case "zipCode":
		return r.ZipCode
	case "county":
		return r.County
	case "primaryPhone":
		return r.PrimaryPhone
	case "email":
		return r.Email
	case "ftPtStatus":
		return string(r.FTPTStatus)
	case "payType":
		return string(r.PayType)
	case "jobTitle":
		return r.JobTitle
	case "employmentStartDate":
		return r.EmploymentStartDate
	case "employmentEndDate":
		return r.EmploymentEndDate
	case "enrollmentPeriodStartDate":
		return r.EnrollmentPeriodStartDate
	case "enrollmentPeriodEndDate":
		return r.EnrollmentPeriodEndDate
	case "coverageEligibilityStartDate":
		return r.CoverageEligibilityStartDate
	case "coverageEligibilityEndDate":
		return r.CoverageEligibilityEndDate
	case "class":
		return r.Class
	case "avgHoursPerWeek":
		return strconv.FormatFloat(r.AvgHoursPerWeek, 'f', -1, 64)
	case "hourlyRate":
		return strconv.FormatFloat(r.HourlyRate, 'f', -1, 64)
	case "annualWages":
		return strconv.FormatFloat(r.AnnualWages, 'f', -1, 64)
	case "stipendAmount":
		return strconv.FormatFloat(r.StipendAmount, 'f', -1, 64)
	default:
		return ""
	}
}

// SetFieldValue writes a field by its JSON key. Numeric fields are parsed
// from the string form; an unparseable number or unknown name is an error.
func (r *Record) SetFieldValue(name, value string) error {
	switch name {
	case "firstName":
		r.FirstName = value
	case "lastName":
		r.LastName = value
	case "dob":
		r.DOB = value
	case "gender":
		r.Gender = value
	case "homeAddress1":
		r.HomeAddress1 = value
	case "homeAddress2":
		r.HomeAddress2 = value
	case "homeCity":
		r.HomeCity = value
	case "state":
		r.State = value
	case "zipCode":
		r.ZipCode = value
	case "county":
		r.County = value
	case "primaryPhone":
		r.PrimaryPhone = value
	case "email":
		r.Email = value
	case "ftPtStatus":
		r.FTPTStatus = EmploymentStatus(value)
	case "payType":
		r.PayType = PayType(value)
	case "jobTitle":
		r.JobTitle = value
	case "employmentStartDate":
		r.EmploymentStartDate = value
	case "employmentEndDate":
		r.EmploymentEndDate = value
	case "enrollmentPeriodStartDate":
		r.EnrollmentPeriodStartDate = value
	case "enrollmentPeriodEndDate":
		r.EnrollmentPeriodEndDate = value
	case "coverageEligibilityStartDate":
		r.CoverageEligibilityStartDate = value
	case "coverageEligibilityEndDate":
		r.CoverageEligibilityEndDate = value
	case "class":
		r.Class = value
	case "avgHoursPerWeek", "hourlyRate", "annualWages", "stipendAmount":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("field %s wants a number, got %q", name, value)
		}
		switch name {
		case "avgHoursPerWeek":
			r.AvgHoursPerWeek = f
		case "hourlyRate":
			r.HourlyRate = f
		case "annualWages":
			r.AnnualWages = f
		case "stipendAmount":
			r.StipendAmount = f
		}
	default:
		return fmt.Errorf("unknown record field: %s", name)
	}
	return nil
}
