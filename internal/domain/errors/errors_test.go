package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)

	custom := NewError("custom", ErrForbidden)
	assert.Equal(t, ErrForbidden.Error(), custom.Error())

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeInvalidInput, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)

	internalMsg := InternalServerError("boom")
	assert.Equal(t, http.StatusInternalServerError, internalMsg.Status)
	assert.Equal(t, "boom", internalMsg.Message)
	assert.Equal(t, "boom", internalMsg.Error())
}

func TestAppError_PaymentTaxonomy(t *testing.T) {
	cfg := Configuration("destination address not configured")
	assert.Equal(t, http.StatusInternalServerError, cfg.Status)
	assert.Equal(t, CodeConfiguration, cfg.Code)
	assert.ErrorIs(t, cfg, ErrConfigMissing)

	funds := InsufficientFunds("need 10 USDC")
	assert.Equal(t, http.StatusBadRequest, funds.Status)
	assert.ErrorIs(t, funds, ErrInsufficientFunds)

	provider := ProviderError("transfer create failed", stderrors.New("status 500"))
	assert.Equal(t, http.StatusBadGateway, provider.Status)
	assert.Equal(t, CodeProviderFailure, provider.Code)

	providerNil := ProviderError("transfer create failed", nil)
	assert.ErrorIs(t, providerNil, ErrProviderFailure)

	rejected := WalletRejected("user declined")
	assert.Equal(t, http.StatusBadRequest, rejected.Status)
	assert.ErrorIs(t, rejected, ErrWalletRejected)

	wallet := WalletNotFound()
	assert.Equal(t, http.StatusNotFound, wallet.Status)
	assert.ErrorIs(t, wallet, ErrWalletNotFound)
}

func TestAppError_Unwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := NewAppError(http.StatusBadGateway, CodeProviderFailure, "outer", inner)
	assert.ErrorIs(t, err, inner)
}
