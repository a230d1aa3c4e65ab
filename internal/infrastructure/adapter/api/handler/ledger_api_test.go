package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	transactionUseCase "github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/transaction"
	userUseCase "github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/security"
)

type ledgerAPI struct {
	router *gin.Engine
	db     *database.TestDBManager
}

func newLedgerAPI(t *testing.T) *ledgerAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	uow := testDB.Manager.CreateUnitOfWork()

	users := userUseCase.NewUserUseCase(
		uow.GetUserRepository(context.Background()),
		security.NewBcryptPinHasher(bcrypt.MinCost),
		testDB.TimeProvider,
		log,
	)
	transactions := transactionUseCase.NewTransactionService(users, uow, testDB.TimeProvider, log, transactionUseCase.Options{
		QueueSize: 16,
	})
	t.Cleanup(transactions.Shutdown)

	router := routes.NewRouter(
		log,
		testDB.TimeProvider,
		nil,
		handler.NewUserHandler(users, log),
		handler.NewTransactionHandler(transactions, log),
		handler.NewHealthHandler(testDB.Manager, log),
	)

	return &ledgerAPI{router: router, db: testDB}
}

func (a *ledgerAPI) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *ledgerAPI) createUser(t *testing.T, email, pin string) dto.UserResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/users", map[string]any{"email": email, "pin": pin})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func (a *ledgerAPI) post(t *testing.T, email, pin, txType string, amount int64) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodPost, "/transactions", map[string]any{
		"email":   email,
		"pin":     pin,
		"tx_type": txType,
		"amount":  amount,
	})
}

func (a *ledgerAPI) balance(t *testing.T, email, pin string) int64 {
	t.Helper()
	w := a.do(t, http.MethodGet, "/users/current-balance?"+credentials(email, pin), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.CurrentBalance
}

func credentials(email, pin string) string {
	return url.Values{"email": {email}, "pin": {pin}}.Encode()
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLedgerAPI_Scenario(t *testing.T) {
	api := newLedgerAPI(t)

	user := api.createUser(t, "a@x.com", "1234")
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, int64(0), user.CurrentBalance)
	assert.Equal(t, int64(0), api.balance(t, "a@x.com", "1234"))

	w := api.post(t, "a@x.com", "1234", "Deposit", 100)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var deposit dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deposit))
	assert.Equal(t, "Deposit", deposit.TxType)
	assert.Equal(t, int64(100), deposit.Amount)
	assert.Equal(t, user.ID, deposit.UserID)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, deposit.TxDate)
	assert.Equal(t, int64(100), api.balance(t, "a@x.com", "1234"))

	w = api.post(t, "a@x.com", "1234", "Debit", 100)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not enough balance", decodeError(t, w).Message)
	assert.Equal(t, int64(100), api.balance(t, "a@x.com", "1234"))

	w = api.post(t, "a@x.com", "1234", "Debit", 99)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(1), api.balance(t, "a@x.com", "1234"))

	// Rejected debit left no row behind
	assert.Equal(t, int64(2), api.db.CountTransactions(t, user.ID))

	w = api.do(t, http.MethodGet, "/transactions?"+credentials("a@x.com", "1234"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ledger dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ledger))
	require.Len(t, ledger.Transactions, 2)
	assert.Equal(t, "Deposit", ledger.Transactions[0].TxType)
	assert.Equal(t, "Debit", ledger.Transactions[1].TxType)
	assert.Less(t, ledger.Transactions[0].ID, ledger.Transactions[1].ID)
}

func TestLedgerAPI_DuplicateUser(t *testing.T) {
	api := newLedgerAPI(t)

	first := api.createUser(t, "dup@x.com", "1111")

	w := api.do(t, http.MethodPost, "/users", map[string]any{"email": "dup@x.com", "pin": "2222"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", decodeError(t, w).Message)

	// The original PIN still works
	assert.Equal(t, int64(0), api.balance(t, "dup@x.com", "1111"))

	w = api.do(t, http.MethodGet, fmt.Sprintf("/users/%d", first.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "pin")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestLedgerAPI_WrongPinWinsAndMutatesNothing(t *testing.T) {
	api := newLedgerAPI(t)

	user := api.createUser(t, "p@x.com", "1234")
	require.Equal(t, http.StatusCreated, api.post(t, "p@x.com", "1234", "Deposit", 50).Code)

	for _, tc := range []struct {
		txType string
		amount int64
	}{
		{"Deposit", 10},
		{"Debit", 10},
		{"Transfer", 10},
		{"Deposit", -5},
	} {
		w := api.post(t, "p@x.com", "9999", tc.txType, tc.amount)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Pin incorrect", decodeError(t, w).Message)
	}

	assert.Equal(t, int64(50), api.balance(t, "p@x.com", "1234"))
	assert.Equal(t, int64(1), api.db.CountTransactions(t, user.ID))

	w := api.do(t, http.MethodGet, "/users/current-balance?"+credentials("p@x.com", "0000"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pin incorrect", decodeError(t, w).Message)
}

func TestLedgerAPI_ValidationErrors(t *testing.T) {
	api := newLedgerAPI(t)
	api.createUser(t, "v@x.com", "1234")

	w := api.post(t, "v@x.com", "1234", "Transfer", 10)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid transaction type", decodeError(t, w).Message)

	w = api.post(t, "v@x.com", "1234", "Deposit", 0)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid amount", decodeError(t, w).Message)

	w = api.do(t, http.MethodPost, "/transactions", map[string]any{"email": "v@x.com", "pin": "1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.post(t, "nobody@x.com", "1234", "Deposit", 10)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeError(t, w).Message)

	w = api.do(t, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodGet, "/users?user_id=424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodPost, "/users", map[string]any{"email": "  ", "pin": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLedgerAPI_FormEncodedRequests(t *testing.T) {
	api := newLedgerAPI(t)

	form := url.Values{"email": {"f@x.com"}, "pin": {"1234"}}
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	form = url.Values{"email": {"f@x.com"}, "pin": {"1234"}, "tx_type": {"Deposit"}, "amount": {"7"}}
	req = httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Equal(t, int64(7), api.balance(t, "f@x.com", "1234"))
}

func TestLedgerAPI_ConcurrentDebits(t *testing.T) {
	api := newLedgerAPI(t)

	const (
		requests = 10
		amount   = 10
		k        = 4
	)
	user := api.createUser(t, "c@x.com", "1234")
	// A debit must leave a positive balance, so k debits of amount need k*amount+1
	require.Equal(t, http.StatusCreated, api.post(t, "c@x.com", "1234", "Deposit", k*amount+1).Code)

	body, err := json.Marshal(map[string]any{
		"email": "c@x.com", "pin": "1234", "tx_type": "Debit", "amount": amount,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	codes := make(chan int, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(string(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)
			codes <- w.Code
		}()
	}
	wg.Wait()
	close(codes)

	succeeded, rejected := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			succeeded++
		case http.StatusNotFound:
			rejected++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}

	assert.Equal(t, k, succeeded)
	assert.Equal(t, requests-k, rejected)
	assert.Equal(t, int64(1), api.balance(t, "c@x.com", "1234"))
	assert.Equal(t, int64(1+k), api.db.CountTransactions(t, user.ID))
}

func TestLedgerAPI_Health(t *testing.T) {
	api := newLedgerAPI(t)

	w := api.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
