package api

import (
	"context"
	"net/http"
)

// GoogleLogin is either an OAuth authorization code or email/password credentials.
type GoogleLogin struct {
	Code     string `json:"code,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type LoginResult struct {
	Token     string `json:"token"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ExchangeGoogle trades a login for a session token. The code flow returns
// the id token nested under tokens; the credential flow returns it flat.
func (c *Client) ExchangeGoogle(ctx context.Context, in GoogleLogin) (*LoginResult, error) {
	var body struct {
		LoginResult
		Tokens struct {
			IDToken string `json:"id_token"`
		} `json:"tokens"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/google", in, &body, "Unauthorized access"); err != nil {
		return nil, err
	}
	res := body.LoginResult
	if res.Token == "" {
		res.Token = body.Tokens.IDToken
	}
	return &res, nil
}
