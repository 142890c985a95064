// Package api implements the JSON HTTP client for the checkers server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"checkers/internal/core"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Verbose    bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) SetVerbose(v bool) {
	c.Verbose = v
}

// SetBaseURL updates the API base URL for the client
func (c *Client) SetBaseURL(url string) {
	c.BaseURL = strings.TrimRight(url, "/")
}

func (c *Client) doRequest(method, path string, body interface{}, result interface{}) error {
	url := c.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Verbose {
		fmt.Printf(">> %s %s\n", method, url)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if c.Verbose {
		fmt.Printf("<< %d %s\n", resp.StatusCode, string(data))
	}

	if resp.StatusCode >= 400 {
		var apiErr core.ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (%s): %s", apiErr.Error, apiErr.Code, apiErr.Details)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if result != nil && len(data) > 0 {
		return json.Unmarshal(data, result)
	}
	return nil
}

// CreateGame starts a new game; size 0 requests the default board
func (c *Client) CreateGame(size int) (*core.GameResponse, error) {
	var body interface{}
	if size > 0 {
		body = core.CreateGameRequest{BoardSize: size}
	}
	var resp core.GameResponse
	if err := c.doRequest(http.MethodPost, "/api/v1/games", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetGame fetches the current game state
func (c *Client) GetGame(gameID string) (*core.GameResponse, error) {
	var resp core.GameResponse
	if err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Move submits a move for the piece at the from coordinate
func (c *Client) Move(gameID string, fromX, fromY, toX, toY int) (*core.GameResponse, error) {
	req := core.MoveRequest{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY}
	var resp core.GameResponse
	if err := c.doRequest(http.MethodPost, "/api/v1/games/"+gameID+"/moves", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Board fetches the ASCII board rendering
func (c *Client) Board(gameID string) (*core.BoardResponse, error) {
	var resp core.BoardResponse
	if err := c.doRequest(http.MethodGet, "/api/v1/games/"+gameID+"/board", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteGame removes a game from the server
func (c *Client) DeleteGame(gameID string) error {
	return c.doRequest(http.MethodDelete, "/api/v1/games/"+gameID, nil, nil)
}

// Health checks server health
func (c *Client) Health() (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := c.doRequest(http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
