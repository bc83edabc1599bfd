package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"dealshare/internal/model"
	"dealshare/pkg/logger"
)

const (
	requestTimeout = 5 * time.Second
	// getAttempts bounds the retry budget for idempotent reads. Writes
	// are never retried.
	getAttempts = 3
	retryDelay  = 200 * time.Millisecond
)

// APIError is a non-2xx answer from the API tier.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Message)
}

// Listings is the discriminated deals-or-vouchers payload returned by the
// merchant-listings and search endpoints.
type Listings struct {
	DataType string          `json:"dataType"`
	Data     json.RawMessage `json:"data"`
}

// DealRows decodes the payload as deals.
func (l *Listings) DealRows() ([]model.Deal, error) {
	var deals []model.Deal
	if err := json.Unmarshal(l.Data, &deals); err != nil {
		return nil, fmt.Errorf("decode deals: %w", err)
	}
	return deals, nil
}

// VoucherRows decodes the payload as vouchers.
func (l *Listings) VoucherRows() ([]model.VoucherWithMerchant, error) {
	var vouchers []model.VoucherWithMerchant
	if err := json.Unmarshal(l.Data, &vouchers); err != nil {
		return nil, fmt.Errorf("decode vouchers: %w", err)
	}
	return vouchers, nil
}

// Client calls the API tier. Every request carries a bounded timeout;
// idempotent GETs get a small retry budget for transient failures, and a
// circuit breaker sheds load once the API tier looks down.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates an API client for the given base URL. The key is
// attached to write endpoints that the API tier gates.
func NewClient(baseURL, apiKey string) *Client {
	log := logger.Get()
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "dealshare-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.TotalFailures*2 > counts.Requests
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("api circuit breaker state change")
		},
	})
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
		breaker: breaker,
	}
}

// get fetches path and decodes the JSON answer into out, retrying
// transient failures.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt < getAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
		body, err := c.do(ctx, http.MethodGet, path, nil)
		if err == nil {
			if out == nil {
				return nil
			}
			return json.Unmarshal(body, out)
		}
		lastErr = err
		if !retryable(err) {
			return err
		}
	}
	return lastErr
}

// post sends body as JSON to path and decodes the answer into out.
// Writes are sent exactly once.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}
	respBody, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("call api: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: apiErrorMessage(data)}
		}
		return data, nil
	})
}

// retryable reports whether a failed GET may be retried: transport errors
// and 5xx answers, never 4xx.
func retryable(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return false
	}
	return true
}

func apiErrorMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "upstream error"
}

func (c *Client) keyed(path string) string {
	return path + "?key=" + url.QueryEscape(c.apiKey)
}

// RankedDeals fetches the vote-ranked deal list for the home page.
func (c *Client) RankedDeals(ctx context.Context) ([]model.DealWithVotes, error) {
	var deals []model.DealWithVotes
	err := c.get(ctx, "/", &deals)
	return deals, err
}

// Deals fetches all deals.
func (c *Client) Deals(ctx context.Context) ([]model.Deal, error) {
	var deals []model.Deal
	err := c.get(ctx, "/deals", &deals)
	return deals, err
}

// LikedDeals fetches deals most liked first.
func (c *Client) LikedDeals(ctx context.Context) ([]model.DealWithVotes, error) {
	var deals []model.DealWithVotes
	err := c.get(ctx, "/deals/liked", &deals)
	return deals, err
}

// RecentDeals fetches deals most recently posted first.
func (c *Client) RecentDeals(ctx context.Context) ([]model.Deal, error) {
	var deals []model.Deal
	err := c.get(ctx, "/deals/recent", &deals)
	return deals, err
}

// Deal fetches one deal.
func (c *Client) Deal(ctx context.Context, id string) (*model.Deal, error) {
	var deal model.Deal
	if err := c.get(ctx, "/deals/"+url.PathEscape(id), &deal); err != nil {
		return nil, err
	}
	return &deal, nil
}

// Vouchers fetches all vouchers.
func (c *Client) Vouchers(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	var vouchers []model.VoucherWithMerchant
	err := c.get(ctx, "/vouchers", &vouchers)
	return vouchers, err
}

// VouchersByDate fetches vouchers soonest-to-expire first.
func (c *Client) VouchersByDate(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	var vouchers []model.VoucherWithMerchant
	err := c.get(ctx, "/vouchers/by-date", &vouchers)
	return vouchers, err
}

// VouchersByLikes fetches vouchers most liked first.
func (c *Client) VouchersByLikes(ctx context.Context) ([]model.VoucherWithMerchant, error) {
	var vouchers []model.VoucherWithMerchant
	err := c.get(ctx, "/vouchers/likes", &vouchers)
	return vouchers, err
}

// Voucher fetches one voucher.
func (c *Client) Voucher(ctx context.Context, id string) (*model.VoucherWithMerchant, error) {
	var voucher model.VoucherWithMerchant
	if err := c.get(ctx, "/vouchers/"+url.PathEscape(id), &voucher); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// Merchants fetches all merchants ordered by name.
func (c *Client) Merchants(ctx context.Context) ([]model.Merchant, error) {
	var merchants []model.Merchant
	err := c.get(ctx, "/merchants", &merchants)
	return merchants, err
}

// MerchantListings fetches a merchant's deals-or-vouchers result.
func (c *Client) MerchantListings(ctx context.Context, merchantID string) (*Listings, error) {
	var listings Listings
	if err := c.get(ctx, "/merchants/"+url.PathEscape(merchantID)+"/deals", &listings); err != nil {
		return nil, err
	}
	return &listings, nil
}

// DealsByCategory fetches the deals in a category.
func (c *Client) DealsByCategory(ctx context.Context, slug string) ([]model.CategoryDeal, error) {
	var deals []model.CategoryDeal
	err := c.get(ctx, "/categories/"+url.PathEscape(slug), &deals)
	return deals, err
}

// Search runs a cross-entity substring search.
func (c *Client) Search(ctx context.Context, query string) (*Listings, error) {
	var listings Listings
	if err := c.get(ctx, "/search?search="+url.QueryEscape(query), &listings); err != nil {
		return nil, err
	}
	return &listings, nil
}

// RegisterForm carries a registration submission upstream.
type RegisterForm struct {
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// Register creates a user via the key-gated endpoint.
func (c *Client) Register(ctx context.Context, form RegisterForm) error {
	return c.post(ctx, c.keyed("/register"), form, nil)
}

// Login checks credentials. A nil user id means they did not match.
func (c *Client) Login(ctx context.Context, username, password string) (*uint, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Authen *uint `json:"authen"`
	}
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return nil, err
	}
	return resp.Authen, nil
}

// User fetches one user record.
func (c *Client) User(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, fmt.Sprintf("/user/%d", userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveDeal bookmarks a deal for the user.
func (c *Client) SaveDeal(ctx context.Context, userID uint, dealID string) error {
	return c.post(ctx, fmt.Sprintf("/saveDeal?userId=%d&dealId=%s", userID, url.QueryEscape(dealID)), nil, nil)
}

// LikeDeal upvotes a deal for the user.
func (c *Client) LikeDeal(ctx context.Context, userID uint, dealID string) error {
	return c.post(ctx, fmt.Sprintf("/likeDeal?userId=%d&dealId=%s", userID, url.QueryEscape(dealID)), nil, nil)
}

// SaveVoucher bookmarks a voucher for the user.
func (c *Client) SaveVoucher(ctx context.Context, userID uint, voucherID string) error {
	return c.post(ctx, fmt.Sprintf("/saveVoucher?userId=%d&voucherId=%s", userID, url.QueryEscape(voucherID)), nil, nil)
}

// LikeVoucher upvotes a voucher for the user.
func (c *Client) LikeVoucher(ctx context.Context, userID uint, voucherID string) error {
	return c.post(ctx, fmt.Sprintf("/likeVoucher?userId=%d&voucherId=%s", userID, url.QueryEscape(voucherID)), nil, nil)
}

// SavedDeals fetches the user's bookmarked deals.
func (c *Client) SavedDeals(ctx context.Context, userID uint) ([]model.Deal, error) {
	var deals []model.Deal
	err := c.get(ctx, fmt.Sprintf("/savedDeals?userId=%d", userID), &deals)
	return deals, err
}

// SavedVouchers fetches the user's bookmarked vouchers.
func (c *Client) SavedVouchers(ctx context.Context, userID uint) ([]model.VoucherWithMerchant, error) {
	var vouchers []model.VoucherWithMerchant
	err := c.get(ctx, fmt.Sprintf("/savedVouchers?userId=%d", userID), &vouchers)
	return vouchers, err
}

// DealForm carries a deal submission upstream. Field names match the
// submission form.
type DealForm struct {
	Title         string `json:"dealTitle"`
	Description   string `json:"dealDescription"`
	Link          string `json:"dealLink"`
	ImageLink     string `json:"dealImageLink"`
	OriginalPrice string `json:"dealOriginalPrice"`
	Price         string `json:"dealPrice"`
	Merchant      string `json:"dealMerchant"`
	Category      string `json:"dealCategory"`
	UserID        uint   `json:"user_id"`
}

// AddDeal submits a deal via the key-gated endpoint.
func (c *Client) AddDeal(ctx context.Context, form DealForm) error {
	return c.post(ctx, c.keyed("/deals/add"), form, nil)
}

// VoucherForm carries a voucher submission upstream.
type VoucherForm struct {
	Title       string `json:"voucherTitle"`
	Code        string `json:"voucherCode"`
	Description string `json:"voucherDescription"`
	ExpiryDate  string `json:"voucherExpiryDate"`
	ShopLink    string `json:"voucherShopLink"`
	Merchant    string `json:"merchant"`
	UserID      uint   `json:"user_id"`
}

// AddVoucher submits a voucher via the key-gated endpoint.
func (c *Client) AddVoucher(ctx context.Context, form VoucherForm) error {
	return c.post(ctx, c.keyed("/vouchers/add"), form, nil)
}
