package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstr1/internal/handler"
	"gstr1/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockInvoiceSource))

	c, w := newRequest(t, "/healthz")
	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_Readiness(t *testing.T) {
	source := new(mocks.MockInvoiceSource)
	h := handler.NewHealthHandler(source)
	source.On("Ping", mock.Anything).Return(nil).Once()
	source.On("Ping", mock.Anything).Return(errors.New("bucket unreachable")).Once()

	c, w := newRequest(t, "/readyz")
	h.Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newRequest(t, "/readyz")
	h.Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	source.AssertExpectations(t)
}
