package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a borrower profile: identity, KYC documents, income and employment details.
type User struct {
	UserID    uint    `json:"UserID" gorm:"primaryKey;autoIncrement"`
	FirstName string  `json:"FirstName" gorm:"size:100;not null" validate:"required"`
	LastName  string  `json:"LastName" gorm:"size:100;not null" validate:"required"`
	Email     string  `json:"Email" gorm:"size:255;not null;index" validate:"required"` // not unique
	Phone     *string `json:"Phone" gorm:"size:20"`
	DOB       *string `json:"DOB" gorm:"size:20"`

	// KYC
	AadharNo        string  `json:"AadharNo" gorm:"size:20;not null" validate:"required"`
	PAN             string  `json:"PAN" gorm:"size:20;not null" validate:"required"`
	AadharUploadDoc *string `json:"AadharUploadDoc" gorm:"size:512"`
	PANUploadDoc    *string `json:"PANUploadDoc" gorm:"size:512"`
	IncomeProofDoc  *string `json:"IncomeProofDoc" gorm:"size:512"`
	PhoneVerified   bool    `json:"PhoneVerified" gorm:"default:false"`
	EmailVerified   bool    `json:"EmailVerified" gorm:"default:false"`

	// Financial
	MonthlyIncome  decimal.NullDecimal `json:"MonthlyIncome" gorm:"type:decimal(20,2)"`
	ExistingEmis   decimal.NullDecimal `json:"ExistingEmis" gorm:"type:decimal(20,2)"`
	MaritalStatus  *string             `json:"MaritalStatus" gorm:"size:50"`
	NoOfDependents *int                `json:"NoOfDependents"`

	// Employment
	CompanyName      *string `json:"CompanyName" gorm:"size:255"`
	CompanyAddress   *string `json:"CompanyAddress" gorm:"type:text"`
	OfficialEmail    *string `json:"OfficialEmail" gorm:"size:255"`
	WorkExperience   *string `json:"WorkExperience" gorm:"size:50"`
	EmploymentNature *string `json:"EmploymentNature" gorm:"size:100"`

	RoleID    uint      `json:"RoleID" gorm:"not null;index" validate:"required"`
	CreatedAt time.Time `json:"CreatedAt" gorm:"autoCreateTime"`

	// Relations
	Role *Role `json:"-" gorm:"foreignKey:RoleID;references:RoleID"`
}
