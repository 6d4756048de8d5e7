// Package qbit is a thin client for the qBittorrent Web API (v2). It covers
// the handful of endpoints needed to snapshot a client's live state: session
// login, application version and the torrent/file/tracker listings.
package qbit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Client contains the data necessary to make API calls to one qBittorrent
// Web UI endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL

	// qBittorrent hands out a SID cookie on login. It is passed back on every
	// subsequent call in place of the credentials.
	sid string
}

// NewClient creates a new initialised qBittorrent Client for the Web UI at
// endpoint, e.g. "http://seedbox.example.net:8080".
func NewClient(endpoint string, c *http.Client) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "endpoint: %s", endpoint)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("endpoint %q must carry a scheme and host", endpoint)
	}

	return &Client{
		httpClient: c,
		baseURL:    u,
	}, nil
}

// Login authenticates against the Web UI and captures the session cookie used
// by all subsequent calls. qBittorrent reports bad credentials with a 200
// status and a "Fails." body rather than an HTTP error.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)

	body, cookies, err := c.postForm(ctx, "api/v2/auth/login", form)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(string(body), "Ok") {
		return errors.Wrapf(ErrAuthentication, "login refused for user %q", username)
	}

	for _, cookie := range cookies {
		if cookie.Name == "SID" {
			c.sid = cookie.Value
			return nil
		}
	}

	return errors.Wrap(ErrAuthentication, "login accepted but no SID cookie returned")
}

// do executes an HTTP request to the Web API endpoint.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, form url.Values) ([]byte, []*http.Cookie, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + endpoint
	u.RawQuery = query.Encode()

	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "http request: %s", method)
	}

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	// some qBittorrent versions enforce Referer as a CSRF measure
	req.Header.Set("Referer", c.baseURL.String())
	if c.sid != "" {
		req.AddCookie(&http.Cookie{Name: "SID", Value: c.sid})
	}

	resp, err := c.httpClient.Do(req)
	if resp != nil {
		defer func() {
			_, errD := io.Copy(io.Discard, resp.Body)
			if errD != nil {
				fmt.Println("error discarding remainder of response body:", errD.Error())
			}
			errD = resp.Body.Close()
			if errD != nil {
				fmt.Println("error closing the response body:", errD.Error())
			}
		}()
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "http Do")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "body")
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return nil, nil, errors.Wrapf(ErrAuthentication, "%s: %s", endpoint, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("%s: status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, resp.Cookies(), nil
}

// get executes a GET to the Web API endpoint.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	body, _, err := c.do(ctx, http.MethodGet, endpoint, query, nil)
	return body, err
}

// postForm executes a form-encoded POST to the Web API endpoint.
func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, []*http.Cookie, error) {
	return c.do(ctx, http.MethodPost, endpoint, url.Values{}, form)
}
