package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/services"
	"go.uber.org/zap"
)

func TestIndustryHandler_HandleList(t *testing.T) {
	svc := new(MockIndustryService)
	handler := NewIndustryHandler(svc, zap.NewNop())

	svc.On("List", mock.Anything).Return([]*models.IndustryCompanies{
		{Code: "tech", Industry: "Technology", Companies: []string{"apple", "ibm"}},
		{Code: "acct", Industry: "Accounting", Companies: []string{}},
	}, nil)

	w := httptest.NewRecorder()
	handler.HandleList(w, httptest.NewRequest(http.MethodGet, "/industries", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"industries":[
			{"code":"tech","industry":"Technology","companies":["apple","ibm"]},
			{"code":"acct","industry":"Accounting","companies":[]}
		]}`,
		w.Body.String())
}

func TestIndustryHandler_HandleCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc, zap.NewNop())
		svc.On("Create", mock.Anything, "tech", "Technology").
			Return(&models.Industry{Code: "tech", Industry: "Technology"}, nil)

		w := httptest.NewRecorder()
		handler.HandleCreate(w, httptest.NewRequest(http.MethodPost, "/industries",
			bytes.NewBufferString(`{"code":"tech","industry":"Technology"}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"industry":{"code":"tech","industry":"Technology"}}`, w.Body.String())
	})

	t.Run("industry not a string", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		handler.HandleCreate(w, httptest.NewRequest(http.MethodPost, "/industries",
			bytes.NewBufferString(`{"code":"tech","industry":true}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestIndustryHandler_HandleAssociate(t *testing.T) {
	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/industries/tech/companies", bytes.NewBufferString(body))
		return withURLParams(req, map[string]string{"code": "tech"})
	}

	t.Run("associated", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc, zap.NewNop())
		svc.On("Associate", mock.Anything, "tech", "apple").
			Return(&models.CompanyIndustry{CompCode: "apple", IndCode: "tech"}, nil)

		w := httptest.NewRecorder()
		handler.HandleAssociate(w, newRequest(`{"comp_code":"apple"}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"Associated apple with tech"}`, w.Body.String())
	})

	t.Run("missing comp_code", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		handler.HandleAssociate(w, newRequest(`{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown company", func(t *testing.T) {
		svc := new(MockIndustryService)
		handler := NewIndustryHandler(svc, zap.NewNop())
		svc.On("Associate", mock.Anything, "tech", "ghost").Return(nil, services.CompanyNotFound("ghost"))

		w := httptest.NewRecorder()
		handler.HandleAssociate(w, newRequest(`{"comp_code":"ghost"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
