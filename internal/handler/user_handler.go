package handler

import (
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"los/internal/errors"
	"los/internal/model"
	"los/internal/service"
)

// Upload form fields and the document kind each one is stored as.
var documentFields = []struct {
	field string
	kind  service.DocumentKind
}{
	{"AadharUploadDoc", service.DocumentAadhar},
	{"PANUploadDoc", service.DocumentPAN},
	{"IncomeProofDoc", service.DocumentIncomeProof},
}

// Create form fields that must be present and non-empty, in report order.
var requiredFormFields = []string{"FirstName", "LastName", "Email", "AadharNo", "PAN", "RoleID"}

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
	log *zap.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log *zap.Logger) *UserHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserHandler{svc: svc, log: log}
}

// MessageResponse is the plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedUser is the subset of a new user echoed back on creation.
type CreatedUser struct {
	UserID          uint                `json:"UserID"`
	FirstName       string              `json:"FirstName"`
	LastName        string              `json:"LastName"`
	Email           string              `json:"Email"`
	AadharUploadDoc *string             `json:"AadharUploadDoc"`
	PANUploadDoc    *string             `json:"PANUploadDoc"`
	IncomeProofDoc  *string             `json:"IncomeProofDoc"`
	ExistingEmis    decimal.NullDecimal `json:"ExistingEmis" swaggertype:"string"`
}

// CreateUserResponse is returned with 201 by CreateUser.
type CreateUserResponse struct {
	Message string      `json:"message"`
	User    CreatedUser `json:"user"`
}

// Options godoc
// @Summary CORS preflight
// @Tags users
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/users [options]
func (h *UserHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "CORS preflight response"})
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param FirstName formData string true "First name"
// @Param LastName formData string true "Last name"
// @Param Email formData string true "Email"
// @Param AadharNo formData string true "Aadhar number"
// @Param PAN formData string true "PAN"
// @Param RoleID formData int true "Role ID"
// @Param Phone formData string false "Phone"
// @Param DOB formData string false "Date of birth"
// @Param MonthlyIncome formData number false "Monthly income"
// @Param ExistingEmis formData number false "Existing EMIs"
// @Param MaritalStatus formData string false "Marital status"
// @Param NoOfDependents formData int false "Number of dependents"
// @Param CompanyName formData string false "Company name"
// @Param CompanyAddress formData string false "Company address"
// @Param OfficialEmail formData string false "Official email"
// @Param WorkExperience formData string false "Work experience"
// @Param EmploymentNature formData string false "Employment nature"
// @Param PhoneVerified formData string false "\"true\" when verified"
// @Param EmailVerified formData string false "\"true\" when verified"
// @Param AadharUploadDoc formData file false "Aadhar document"
// @Param PANUploadDoc formData file false "PAN document"
// @Param IncomeProofDoc formData file false "Income proof document"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	if missing := missingFormFields(c); len(missing) > 0 {
		return h.fail(c, errors.NewMissingFieldsError(missing...))
	}

	user, err := userFromForm(c)
	if err != nil {
		return h.fail(c, err)
	}

	uploads, closeAll, err := uploadsFromForm(c)
	defer closeAll()
	if err != nil {
		return h.fail(c, err)
	}

	created, err := h.svc.CreateUser(c.Request().Context(), user, uploads)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreateUserResponse{
		Message: "User created successfully!",
		User: CreatedUser{
			UserID:          created.UserID,
			FirstName:       created.FirstName,
			LastName:        created.LastName,
			Email:           created.Email,
			AadharUploadDoc: created.AadharUploadDoc,
			PANUploadDoc:    created.PANUploadDoc,
			IncomeProofDoc:  created.IncomeProofDoc,
			ExistingEmis:    created.ExistingEmis,
		},
	})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Partially update a user
// @Description Fields present in the body overwrite stored values; absent fields are kept.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body model.User false "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}

	var patch model.UserPatch
	if err := json.NewDecoder(c.Request().Body).Decode(&patch); err != nil {
		h.log.Debug("decode patch", zap.Error(err))
		return h.fail(c, errors.ErrInvalidBody)
	}

	if _, err := h.svc.UpdateUser(c.Request().Context(), id, &patch); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User updated successfully!"})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully!"})
}

func (h *UserHandler) fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID reads the path id. An id that is not a non-negative integer cannot
// name a user, so it reads as not found.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.ErrUserNotFound
	}
	return uint(id), nil
}

// missingFormFields lists required fields absent from the form or empty.
func missingFormFields(c echo.Context) []string {
	var missing []string
	for _, name := range requiredFormFields {
		if c.FormValue(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// userFromForm maps the create form onto a User. Required fields are already
// known to be present; values that cannot be converted fail here.
func userFromForm(c echo.Context) (*model.User, error) {
	var invalid []string

	user := &model.User{
		FirstName:        c.FormValue("FirstName"),
		LastName:         c.FormValue("LastName"),
		Email:            c.FormValue("Email"),
		Phone:            optionalString(c, "Phone"),
		DOB:              optionalString(c, "DOB"),
		AadharNo:         c.FormValue("AadharNo"),
		PAN:              c.FormValue("PAN"),
		PhoneVerified:    c.FormValue("PhoneVerified") == "true",
		EmailVerified:    c.FormValue("EmailVerified") == "true",
		MaritalStatus:    optionalString(c, "MaritalStatus"),
		CompanyName:      optionalString(c, "CompanyName"),
		CompanyAddress:   optionalString(c, "CompanyAddress"),
		OfficialEmail:    optionalString(c, "OfficialEmail"),
		WorkExperience:   optionalString(c, "WorkExperience"),
		EmploymentNature: optionalString(c, "EmploymentNature"),
	}

	if v := c.FormValue("RoleID"); v != "" {
		roleID, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			invalid = append(invalid, "RoleID")
		}
		user.RoleID = uint(roleID)
	}
	for _, f := range []struct {
		name string
		dst  *decimal.NullDecimal
	}{
		{"MonthlyIncome", &user.MonthlyIncome},
		{"ExistingEmis", &user.ExistingEmis},
	} {
		v := c.FormValue(f.name)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			invalid = append(invalid, f.name)
			continue
		}
		*f.dst = decimal.NewNullDecimal(d)
	}
	if v := c.FormValue("NoOfDependents"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			invalid = append(invalid, "NoOfDependents")
		} else {
			user.NoOfDependents = &n
		}
	}

	if len(invalid) > 0 {
		return nil, errors.NewInvalidFieldsError(invalid...)
	}
	return user, nil
}

func optionalString(c echo.Context, name string) *string {
	v := c.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

// uploadsFromForm opens every attached KYC document. The returned func closes
// whatever was opened and is always safe to call.
func uploadsFromForm(c echo.Context) ([]service.Upload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	var uploads []service.Upload
	for _, doc := range documentFields {
		fh, err := c.FormFile(doc.field)
		if err != nil {
			if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
				continue
			}
			return nil, closeAll, err
		}
		if fh.Filename == "" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		uploads = append(uploads, service.Upload{Kind: doc.kind, Filename: fh.Filename, Content: f})
	}
	return uploads, closeAll, nil
}
