// Package apiclient is a Go client for the house-hunting REST API.
//
// It keeps the session in a TokenStore, sends the access token as a
// bearer header and clears the session on any 401 response.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Error is a failure envelope returned by the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsStatus reports whether err is an API error with the given status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore

	// OnUnauthorized runs after the stored session has been cleared
	// because of a 401.
	OnUnauthorized func()
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenStore(s TokenStore) Option {
	return func(c *Client) { c.tokens = s }
}

func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.OnUnauthorized = fn }
}

// New builds a client for baseURL, the API root including /api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  &MemoryTokens{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Tokens() TokenStore {
	return c.tokens
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	t, err := c.tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}
	if t.Access != "" {
		req.Header.Set("Authorization", "Bearer "+t.Access)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, in, out any) (string, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return "", err
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, q, body)
	if err != nil {
		return "", err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send executes req and decodes the envelope's data into out. It returns
// the envelope message.
func (c *Client) send(req *http.Request, out any) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.tokens.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return "", &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &Error{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return env.Message, nil
}

// ======================================================
// AUTH
// ======================================================

func (c *Client) SignupTenant(ctx context.Context, in SignupRequest) (*Session, string, error) {
	return c.signup(ctx, "tenant", in)
}

func (c *Client) SignupLandlord(ctx context.Context, in SignupRequest) (*Session, string, error) {
	return c.signup(ctx, "landlord", in)
}

func (c *Client) signup(ctx context.Context, role string, in SignupRequest) (*Session, string, error) {
	var s Session
	msg, err := c.doJSON(ctx, http.MethodPost, "/auth/signup/"+role, nil, in, &s)
	if err != nil {
		return nil, "", err
	}
	return &s, msg, c.tokens.Save(Tokens{Access: s.Token, Refresh: s.RefreshToken})
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil,
		map[string]string{"email": email, "password": password}, &s)
	if err != nil {
		return nil, err
	}
	return &s, c.tokens.Save(Tokens{Access: s.Token, Refresh: s.RefreshToken})
}

// Refresh swaps the stored refresh token for a new access token. The
// refresh token itself is kept.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	t, err := c.tokens.Load()
	if err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if _, err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", nil,
		map[string]string{"refreshToken": t.Refresh}, &out); err != nil {
		return "", err
	}

	t.Access = out.Token
	return out.Token, c.tokens.Save(t)
}

// Logout clears the local session even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if cerr := c.tokens.Clear(); err == nil {
		err = cerr
	}
	return err
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if _, err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ======================================================
// LANDLORD PROFILE
// ======================================================

func (c *Client) CreateLandlordProfile(ctx context.Context, in LandlordProfileRequest) (*LandlordProfile, error) {
	var p LandlordProfile
	if _, err := c.doJSON(ctx, http.MethodPost, "/landlord-profile", nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) LandlordProfile(ctx context.Context) (*LandlordProfile, error) {
	var p LandlordProfile
	if _, err := c.doJSON(ctx, http.MethodGet, "/landlord-profile", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ======================================================
// HOUSES
// ======================================================

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", fmt.Sprint(pageSize))
	}
	return q
}

func (c *Client) ListHouses(ctx context.Context, hq HouseQuery) (*Page[House], error) {
	q := pageQuery(hq.Page, hq.PageSize)
	if hq.City != "" {
		q.Set("city", hq.City)
	}
	if hq.Estate != "" {
		q.Set("estate", hq.Estate)
	}
	if hq.MinPrice != nil {
		q.Set("minPrice", fmt.Sprint(*hq.MinPrice))
	}
	if hq.MaxPrice != nil {
		q.Set("maxPrice", fmt.Sprint(*hq.MaxPrice))
	}

	var p Page[House]
	if _, err := c.doJSON(ctx, http.MethodGet, "/houses", q, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetHouse(ctx context.Context, id string) (*House, error) {
	return c.house(ctx, http.MethodGet, "/houses/"+url.PathEscape(id), nil)
}

func (c *Client) CreateHouse(ctx context.Context, in HouseInput) (*House, error) {
	return c.house(ctx, http.MethodPost, "/houses", in)
}

// UpdateHouse sends only the fields set in in.
func (c *Client) UpdateHouse(ctx context.Context, id string, in HouseInput) (*House, error) {
	return c.house(ctx, http.MethodPut, "/houses/"+url.PathEscape(id), in)
}

func (c *Client) UpdateHouseStatus(ctx context.Context, id, status string) (*House, error) {
	return c.house(ctx, http.MethodPatch, "/houses/"+url.PathEscape(id)+"/status", map[string]string{"status": status})
}

func (c *Client) DeleteHouse(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/houses/"+url.PathEscape(id), nil, nil, nil)
	return err
}

func (c *Client) house(ctx context.Context, method, path string, in any) (*House, error) {
	var h House
	if _, err := c.doJSON(ctx, method, path, nil, in, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) LandlordHouses(ctx context.Context, landlordID string, page, pageSize int) (*Page[House], error) {
	var p Page[House]
	path := "/landlords/" + url.PathEscape(landlordID) + "/houses"
	if _, err := c.doJSON(ctx, http.MethodGet, path, pageQuery(page, pageSize), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) MyHouses(ctx context.Context, page, pageSize int) (*Page[House], error) {
	var p Page[House]
	if _, err := c.doJSON(ctx, http.MethodGet, "/my-houses", pageQuery(page, pageSize), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) MyHouse(ctx context.Context, id string) (*House, error) {
	return c.house(ctx, http.MethodGet, "/my-houses/"+url.PathEscape(id), nil)
}

func (c *Client) UploadPhotos(ctx context.Context, houseID string, files []PhotoFile) ([]Photo, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		w, err := mw.CreateFormFile("photos[]", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, err
		}
		if err := mw.WriteField("captions[]", f.Caption); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/houses/"+url.PathEscape(houseID)+"/photos", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var photos []Photo
	if _, err := c.send(req, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// ======================================================
// ACTIVITY
// ======================================================

func (c *Client) MyActivity(ctx context.Context, action string, page, pageSize int) (*Page[Activity], error) {
	q := pageQuery(page, pageSize)
	if action != "" {
		q.Set("action", action)
	}
	var p Page[Activity]
	if _, err := c.doJSON(ctx, http.MethodGet, "/my-activity", q, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
