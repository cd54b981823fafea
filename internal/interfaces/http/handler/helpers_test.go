package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	catalogapp "github.com/pickleworks/backend/internal/application/catalog"
	engagementapp "github.com/pickleworks/backend/internal/application/engagement"
	identityapp "github.com/pickleworks/backend/internal/application/identity"
	shoppingapp "github.com/pickleworks/backend/internal/application/shopping"
	"github.com/pickleworks/backend/internal/domain/engagement"
	"github.com/pickleworks/backend/internal/domain/identity"
	"github.com/pickleworks/backend/internal/domain/shared"
	"github.com/pickleworks/backend/internal/infrastructure/cache"
	"github.com/pickleworks/backend/internal/infrastructure/persistence"
	"github.com/pickleworks/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// withSession pins the request to a fixed session id, standing in for
// the session cookie middleware.
func withSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionIDContextKey, sessionID)
		c.Next()
	}
}

func performJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, "expected success response, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// memAccountRepo is an in-memory identity.AccountRepository
type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*identity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*identity.Account)}
}

func (r *memAccountRepo) Create(_ context.Context, account *identity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.Username] = account
	return nil
}

func (r *memAccountRepo) FindByUsername(_ context.Context, username string) (*identity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return account, nil
}

func (r *memAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[username]
	return ok, nil
}

// memReviewRepo is an in-memory engagement.ReviewRepository
type memReviewRepo struct {
	mu      sync.Mutex
	reviews []*engagement.Review
	fail    error
}

func (r *memReviewRepo) Append(_ context.Context, review *engagement.Review) error {
	if r.fail != nil {
		return r.fail
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) List(_ context.Context) ([]*engagement.Review, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*engagement.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// memContactRepo is an in-memory engagement.ContactRepository
type memContactRepo struct {
	mu       sync.Mutex
	messages []*engagement.ContactMessage
	fail     error
}

func (r *memContactRepo) Append(_ context.Context, message *engagement.ContactMessage) error {
	if r.fail != nil {
		return r.fail
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

func (r *memContactRepo) List(_ context.Context) ([]*engagement.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*engagement.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

// shopEnv wires the application services over in-memory infrastructure
type shopEnv struct {
	sessions   *cache.InMemorySessionStore
	accounts   *identityapp.AccountService
	products   *catalogapp.ProductService
	carts      *shoppingapp.CartService
	checkout   *shoppingapp.CheckoutService
	engagement *engagementapp.EngagementService
	reviewRepo *memReviewRepo
}

func newShopEnv(t *testing.T) *shopEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	sessions := cache.NewInMemorySessionStore()
	products := catalogapp.NewProductService(persistence.NewDefaultProductRepository())
	shipping := decimal.NewFromInt(50)
	reviewRepo := &memReviewRepo{}

	return &shopEnv{
		sessions:   sessions,
		accounts:   identityapp.NewAccountService(newMemAccountRepo(), nil, log),
		products:   products,
		carts:      shoppingapp.NewCartService(sessions, products, shipping, log),
		checkout:   shoppingapp.NewCheckoutService(sessions, products, nil, shipping, log),
		engagement: engagementapp.NewEngagementService(reviewRepo, &memContactRepo{}, log),
		reviewRepo: reviewRepo,
	}
}

func requireErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := decodeResponse(t, w)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)
}
