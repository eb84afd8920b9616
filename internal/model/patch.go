package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Optional holds a value decoded from JSON together with whether its key was
// present at all. A present JSON null decodes into the zero value of T, which
// clears nullable (pointer and Null*) fields.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// exists in the document.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := decodeField(data, &v); err != nil {
		return err
	}
	o.Value = v
	o.Present = true
	return nil
}

// ApplyTo overwrites dst when the value was present.
func (o Optional[T]) ApplyTo(dst *T) {
	if o.Present {
		*dst = o.Value
	}
}

// UserPatch is a partial update of a User. UserID and CreatedAt are not patchable.
type UserPatch struct {
	FirstName        Optional[string]              `json:"FirstName"`
	LastName         Optional[string]              `json:"LastName"`
	Email            Optional[string]              `json:"Email"`
	Phone            Optional[*string]             `json:"Phone"`
	DOB              Optional[*string]             `json:"DOB"`
	AadharNo         Optional[string]              `json:"AadharNo"`
	PAN              Optional[string]              `json:"PAN"`
	AadharUploadDoc  Optional[*string]             `json:"AadharUploadDoc"`
	PANUploadDoc     Optional[*string]             `json:"PANUploadDoc"`
	IncomeProofDoc   Optional[*string]             `json:"IncomeProofDoc"`
	PhoneVerified    Optional[bool]                `json:"PhoneVerified"`
	EmailVerified    Optional[bool]                `json:"EmailVerified"`
	MonthlyIncome    Optional[decimal.NullDecimal] `json:"MonthlyIncome"`
	ExistingEmis     Optional[decimal.NullDecimal] `json:"ExistingEmis"`
	MaritalStatus    Optional[*string]             `json:"MaritalStatus"`
	NoOfDependents   Optional[*int]                `json:"NoOfDependents"`
	CompanyName      Optional[*string]             `json:"CompanyName"`
	CompanyAddress   Optional[*string]             `json:"CompanyAddress"`
	OfficialEmail    Optional[*string]             `json:"OfficialEmail"`
	WorkExperience   Optional[*string]             `json:"WorkExperience"`
	EmploymentNature Optional[*string]             `json:"EmploymentNature"`
	RoleID           Optional[uint]                `json:"RoleID"`
}

// Apply merges every present field of p into u.
func (p *UserPatch) Apply(u *User) {
	p.FirstName.ApplyTo(&u.FirstName)
	p.LastName.ApplyTo(&u.LastName)
	p.Email.ApplyTo(&u.Email)
	p.Phone.ApplyTo(&u.Phone)
	p.DOB.ApplyTo(&u.DOB)
	p.AadharNo.ApplyTo(&u.AadharNo)
	p.PAN.ApplyTo(&u.PAN)
	p.AadharUploadDoc.ApplyTo(&u.AadharUploadDoc)
	p.PANUploadDoc.ApplyTo(&u.PANUploadDoc)
	p.IncomeProofDoc.ApplyTo(&u.IncomeProofDoc)
	p.PhoneVerified.ApplyTo(&u.PhoneVerified)
	p.EmailVerified.ApplyTo(&u.EmailVerified)
	p.MonthlyIncome.ApplyTo(&u.MonthlyIncome)
	p.ExistingEmis.ApplyTo(&u.ExistingEmis)
	p.MaritalStatus.ApplyTo(&u.MaritalStatus)
	p.NoOfDependents.ApplyTo(&u.NoOfDependents)
	p.CompanyName.ApplyTo(&u.CompanyName)
	p.CompanyAddress.ApplyTo(&u.CompanyAddress)
	p.OfficialEmail.ApplyTo(&u.OfficialEmail)
	p.WorkExperience.ApplyTo(&u.WorkExperience)
	p.EmploymentNature.ApplyTo(&u.EmploymentNature)
	p.RoleID.ApplyTo(&u.RoleID)
}

// decodeField decodes one patch value into the column type it targets,
// accepting every JSON spelling the column can hold: any scalar for text,
// numbers or numerals for integers, booleans or their string forms for flags.
// Objects, arrays and non-numeric text for numeric columns are rejected.
func decodeField(data []byte, dst any) error {
	data = bytes.TrimSpace(data)
	null := bytes.Equal(data, []byte("null"))

	switch d := dst.(type) {
	case *string:
		if null {
			*d = ""
			return nil
		}
		s, err := scalarText(data)
		if err != nil {
			return err
		}
		*d = s
	case **string:
		if null {
			*d = nil
			return nil
		}
		s, err := scalarText(data)
		if err != nil {
			return err
		}
		*d = &s
	case *uint:
		if null {
			*d = 0
			return nil
		}
		n, err := integer(data)
		if err != nil {
			return err
		}
		if n < 0 || uint64(n) > math.MaxUint {
			return fmt.Errorf("value %s out of range", data)
		}
		*d = uint(n)
	case **int:
		if null {
			*d = nil
			return nil
		}
		n, err := integer(data)
		if err != nil {
			return err
		}
		if n < math.MinInt || n > math.MaxInt {
			return fmt.Errorf("value %s out of range", data)
		}
		v := int(n)
		*d = &v
	case *bool:
		if null {
			*d = false
			return nil
		}
		s, err := scalarText(data)
		if err != nil {
			return err
		}
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("value %s is not a boolean", data)
		}
		*d = b
	default:
		return json.Unmarshal(data, dst)
	}
	return nil
}

// scalarText returns a JSON scalar as text: strings unquoted, numbers and
// booleans as written.
func scalarText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("value %s is not a scalar", data)
	}
	if !json.Valid(data) {
		return "", fmt.Errorf("invalid value %s", data)
	}
	return string(data), nil
}

// integer accepts a JSON number or a quoted numeral with no fractional part.
func integer(data []byte) (int64, error) {
	s, err := scalarText(data)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("value %s is not an integer", data)
	}
	return d.IntPart(), nil
}
