package apilo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/miskazdrowia/shop-backend/internal/feed"
)

// Token is an explicit bearer-token holder. Expiry is compared at call time;
// there is no ambient process-wide token state.
type Token struct {
	Access    string
	Refresh   string
	ExpiresAt time.Time
}

func (t Token) valid() bool {
	return t.Access != "" && time.Now().Before(t.ExpiresAt)
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// token returns a usable access token, exchanging or refreshing one when
// needed. Concurrent callers share a single in-flight exchange.
func (c *Client) token(ctx context.Context, force bool) (string, error) {
	c.mu.Lock()
	tok := c.tok
	c.mu.Unlock()

	if !force && tok.valid() {
		return tok.Access, nil
	}

	v, err, _ := c.sf.Do("token", func() (any, error) {
		c.mu.Lock()
		cur := c.tok
		c.mu.Unlock()
		if !force && cur.valid() {
			return cur, nil
		}

		fresh, err := c.exchange(ctx, cur)
		if err != nil {
			return Token{}, err
		}

		c.mu.Lock()
		c.tok = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return v.(Token).Access, nil
}

// exchange performs one token request against the ERP token endpoint, using
// the refresh-token grant when a refresh token is available and falling back
// to the one-time authorization code otherwise.
func (c *Client) exchange(ctx context.Context, cur Token) (Token, error) {
	refresh := cur.Refresh
	if refresh == "" {
		refresh = c.cfg.RefreshToken
	}

	var body map[string]string
	if refresh != "" {
		body = map[string]string{"grantType": "refresh_token", "token": refresh}
	} else if c.cfg.AuthCode != "" {
		body = map[string]string{"grantType": "authorization_code", "code": c.cfg.AuthCode}
	} else {
		return Token{}, &feed.AuthError{Err: fmt.Errorf("no refresh token or authorization code configured")}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		SetResult(&tokenResponse{}).
		Post(c.cfg.BaseURL + "/rest/auth/token/")
	if err != nil {
		return Token{}, &feed.AuthError{Err: err}
	}
	if resp.IsError() {
		return Token{}, &feed.AuthError{Status: resp.StatusCode(), Body: resp.String()}
	}

	tr, ok := resp.Result().(*tokenResponse)
	if !ok || tr.AccessToken == "" {
		return Token{}, &feed.AuthError{Err: fmt.Errorf("token endpoint returned no access token")}
	}

	ttl := time.Duration(tr.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	// renew a minute early so an almost-expired token is never sent
	expiresAt := time.Now().Add(ttl - time.Minute)

	log.Debug("apilo: access token refreshed")
	return Token{Access: tr.AccessToken, Refresh: tr.RefreshToken, ExpiresAt: expiresAt}, nil
}
