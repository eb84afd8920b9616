package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleUser() User {
	dependents := 2
	return User{
		UserID:         7,
		FirstName:      "Asha",
		LastName:       "Rao",
		Email:          "asha@example.com",
		Phone:          strPtr("9876543210"),
		AadharNo:       "123412341234",
		PAN:            "ABCDE1234F",
		PANUploadDoc:   strPtr("uploads/pan_0f.png"),
		MonthlyIncome:  decimal.NewNullDecimal(decimal.NewFromInt(85000)),
		NoOfDependents: &dependents,
		CompanyName:    strPtr("Acme"),
		RoleID:         2,
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUserPatch_OnlyPresentFieldsChange(t *testing.T) {
	var patch UserPatch
	require.NoError(t, json.Unmarshal([]byte(`{"Phone": "9999999999"}`), &patch))

	u := sampleUser()
	before := sampleUser()
	patch.Apply(&u)

	require.NotNil(t, u.Phone)
	assert.Equal(t, "9999999999", *u.Phone)

	u.Phone = before.Phone
	assert.Equal(t, before, u)
}

func TestUserPatch_NullClearsNullableFields(t *testing.T) {
	var patch UserPatch
	body := `{"CompanyName": null, "MonthlyIncome": null, "NoOfDependents": null, "PANUploadDoc": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	assert.True(t, patch.CompanyName.Present)
	assert.False(t, patch.FirstName.Present)

	u := sampleUser()
	patch.Apply(&u)

	assert.Nil(t, u.CompanyName)
	assert.Nil(t, u.NoOfDependents)
	assert.Nil(t, u.PANUploadDoc)
	assert.False(t, u.MonthlyIncome.Valid)
	assert.Equal(t, "Asha", u.FirstName)
}

func TestUserPatch_TypedValues(t *testing.T) {
	var patch UserPatch
	body := `{"PhoneVerified": true, "ExistingEmis": 1250.5, "MonthlyIncome": "90000", "NoOfDependents": 3, "RoleID": 4}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	u := sampleUser()
	patch.Apply(&u)

	assert.True(t, u.PhoneVerified)
	assert.False(t, u.EmailVerified)
	assert.True(t, u.ExistingEmis.Valid)
	assert.True(t, u.ExistingEmis.Decimal.Equal(decimal.RequireFromString("1250.5")))
	assert.True(t, u.MonthlyIncome.Decimal.Equal(decimal.NewFromInt(90000)))
	require.NotNil(t, u.NoOfDependents)
	assert.Equal(t, 3, *u.NoOfDependents)
	assert.Equal(t, uint(4), u.RoleID)
}

func TestUserPatch_IgnoresUnknownAndImmutableKeys(t *testing.T) {
	var patch UserPatch
	body := `{"UserID": 99, "CreatedAt": "2020-01-01T00:00:00Z", "Nickname": "A"}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	u := sampleUser()
	patch.Apply(&u)

	assert.Equal(t, sampleUser(), u)
}

func TestUserPatch_ScalarsWriteThroughToColumnType(t *testing.T) {
	var patch UserPatch
	body := `{
		"WorkExperience": 5,
		"FirstName": 42,
		"CompanyName": true,
		"NoOfDependents": "3",
		"RoleID": " 4 ",
		"PhoneVerified": "true",
		"EmailVerified": 1,
		"ExistingEmis": "1200.75"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	u := sampleUser()
	patch.Apply(&u)

	require.NotNil(t, u.WorkExperience)
	assert.Equal(t, "5", *u.WorkExperience)
	assert.Equal(t, "42", u.FirstName)
	require.NotNil(t, u.CompanyName)
	assert.Equal(t, "true", *u.CompanyName)
	require.NotNil(t, u.NoOfDependents)
	assert.Equal(t, 3, *u.NoOfDependents)
	assert.Equal(t, uint(4), u.RoleID)
	assert.True(t, u.PhoneVerified)
	assert.True(t, u.EmailVerified)
	assert.True(t, u.ExistingEmis.Decimal.Equal(decimal.RequireFromString("1200.75")))
}

func TestUserPatch_IntegralFloatFitsIntegerColumn(t *testing.T) {
	var patch UserPatch
	require.NoError(t, json.Unmarshal([]byte(`{"NoOfDependents": 2.0, "RoleID": "3.00"}`), &patch))

	require.NotNil(t, patch.NoOfDependents.Value)
	assert.Equal(t, 2, *patch.NoOfDependents.Value)
	assert.Equal(t, uint(3), patch.RoleID.Value)
}

func TestUserPatch_RejectsValuesColumnCannotHold(t *testing.T) {
	bodies := map[string]string{
		"object into text":      `{"Phone": {"n": 1}}`,
		"array into text":       `{"FirstName": ["A"]}`,
		"word into integer":     `{"NoOfDependents": "three"}`,
		"fraction into integer": `{"NoOfDependents": 2.5}`,
		"negative role id":      `{"RoleID": -1}`,
		"word into flag":        `{"PhoneVerified": "yes"}`,
		"word into decimal":     `{"MonthlyIncome": "plenty"}`,
		"object into integer":   `{"RoleID": {}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			var patch UserPatch
			assert.Error(t, json.Unmarshal([]byte(body), &patch))
		})
	}
}
